package category

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Category groups fragrance notes (floral, woody, ...). It carries no slug
// and no images; uniqueness is a case-insensitive match on the name itself.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryRequest struct {
	Name string `json:"name" form:"name"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

var (
	ErrValidation = errors.New("category validation failed")
	ErrNameTaken  = errors.New("category with this name already exists")
	ErrNotFound   = errors.New("category not found")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrNameTaken):
		return 409
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}

type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)

	// GetAll returns every category ordered by name; categories have no
	// meaningful recency notion.
	GetAll(ctx context.Context) ([]Category, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Category, error)
	Replace(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// IsNameTaken matches the full name case-insensitively, unlike the
	// slug checks of other entities.
	IsNameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

type Service interface {
	Create(ctx context.Context, req *CategoryRequest) (*Category, error)
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, req *CategoryRequest) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*Category, error)
}
