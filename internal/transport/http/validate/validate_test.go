package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpulse/adpulse/internal/domain"
)

type sampleReq struct {
	Email string  `json:"email" validate:"required"`
	Limit float64 `json:"limit" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes_known_fields", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.c","limit":2}`))
		var req sampleReq
		require.NoError(t, DecodeJSON(r, &req))
		assert.Equal(t, "a@b.c", req.Email)
	})

	t.Run("rejects_unknown_fields", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.c","bogus":1}`))
		var req sampleReq
		assert.Error(t, DecodeJSON(r, &req))
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		var req sampleReq
		assert.Error(t, DecodeJSON(r, &req))
	})
}

func TestStruct(t *testing.T) {
	t.Run("passes_valid", func(t *testing.T) {
		assert.NoError(t, Struct(&sampleReq{Email: "a@b.c"}, nil))
	})

	t.Run("custom_message_for_named_field", func(t *testing.T) {
		err := Struct(&sampleReq{}, map[string]string{"Email": "Email is required"})
		require.Error(t, err)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
		assert.Equal(t, "Email is required", ae.Message)
	})

	t.Run("generic_meta_for_unnamed_field", func(t *testing.T) {
		err := Struct(&sampleReq{Email: "a@b.c", Limit: -1}, nil)
		require.Error(t, err)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Contains(t, ae.Meta, "limit")
	})
}
