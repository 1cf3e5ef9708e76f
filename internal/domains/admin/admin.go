package admin

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Admin is a panel account. Passwords are stored as bcrypt hashes; this is
// a gate for the write routes, not a hardened security model.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

var (
	ErrValidation         = errors.New("login validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
