package author

import (
	"context"

	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

type Repository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Author, error)
	Replace(ctx context.Context, a *Author) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type Service interface {
	Create(ctx context.Context, form *AuthorForm, files upload.Manifest) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	GetBySlug(ctx context.Context, slug string) (*Author, error)
	Update(ctx context.Context, id string, form *AuthorForm, files upload.Manifest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) (*Author, error)
}
