package model

import (
	"strings"
	"time"

	"catalog-backend/internal/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest - POST /api/login_check. "username" carries the email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return shared.NewValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	))
}

// NormalizedEmail is the lookup form of the username.
func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Username))
}

type LoginResponse struct {
	Token string `json:"token"`
}
