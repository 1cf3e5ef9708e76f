package comment

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/blog"
)

// Comment is a visitor comment attached to a blog post. Comments carry no
// slug and no images; they arrive as plain JSON rather than multipart.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	BlogID    uuid.UUID `json:"-"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Blog    string `json:"blog"` // referenced blog id, not validated for existence
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Comment, validation.Required),
	)
}

// BlogRef is the fan-out projection embedded in read responses.
type BlogRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}

type Response struct {
	Comment
	Blog *BlogRef `json:"blog,omitempty"`
}

var (
	ErrValidation = errors.New("comment validation failed")
	ErrNotFound   = errors.New("comment not found")
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
	Create(ctx context.Context, c *Comment) (*Comment, error)
	GetAll(ctx context.Context) ([]Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogReader is the narrow read surface needed for blog fan-out.
// blog.Repository satisfies it.
type BlogReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]blog.Blog, error)
}

type Service interface {
	Create(ctx context.Context, req *CommentRequest) (*Comment, error)
	GetAll(ctx context.Context) ([]Response, error)
	Approve(ctx context.Context, id uuid.UUID) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) (*Comment, error)
}
