package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a demo identity. No password, no verification: registration is
// pure identity issuance and the record is immutable apart from LastActive.
type User struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	IsDemoUser bool      `json:"is_demo_user"`
}

const DefaultUserName = "Demo User"

func NewUser(name, email string, now time.Time) (*User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, ErrValidation("Email is required")
	}
	if name == "" {
		name = DefaultUserName
	}

	t := now.UTC()
	return &User{
		UserID:     uuid.NewString(),
		Email:      email,
		Name:       name,
		CreatedAt:  t,
		LastActive: t,
		IsDemoUser: true,
	}, nil
}

func (u *User) Touch(now time.Time) {
	u.LastActive = now.UTC()
}
