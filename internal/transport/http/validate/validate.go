// Package validate decodes and checks request bodies.
package validate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/adpulse/adpulse/internal/domain"
)

var v = validator.New()

func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Struct runs the tag validators on a request DTO. messages overrides the
// error text per struct field so endpoints can keep their documented
// wording ("Email is required" etc); unlisted fields get a generic message.
func Struct(dst any, messages map[string]string) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrValidation("invalid request body")
	}

	first := verrs[0]
	if msg, ok := messages[first.Field()]; ok {
		return domain.ErrValidation(msg)
	}

	meta := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		meta[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " check"
	}
	return domain.ErrValidationMeta("invalid request body", meta)
}
