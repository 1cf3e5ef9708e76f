package feedback

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Feedback is a contact-form submission. No slug, no images, no references.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r FeedbackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.Message, validation.Required),
	)
}

var (
	ErrValidation = errors.New("feedback validation failed")
	ErrNotFound   = errors.New("feedback not found")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}

type Repository interface {
	Create(ctx context.Context, f *Feedback) (*Feedback, error)
	GetAll(ctx context.Context) ([]Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, req *FeedbackRequest) (*Feedback, error)
	GetAll(ctx context.Context) ([]Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) (*Feedback, error)
}
