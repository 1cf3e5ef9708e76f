package note

import (
	"context"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/category"
	"scentpress-backend/internal/shared/upload"
)

type Repository interface {
	Create(ctx context.Context, n *Note) (*Note, error)
	GetAll(ctx context.Context) ([]Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Note, error)
	GetBySlug(ctx context.Context, slug string) (*Note, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Note, error)
	Replace(ctx context.Context, n *Note) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// CategoryReader is the narrow read surface the note service needs for
// category fan-out. category.Repository satisfies it.
type CategoryReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]category.Category, error)
}

type Service interface {
	Create(ctx context.Context, form *NoteForm, files upload.Manifest) (*Note, error)
	GetAll(ctx context.Context) ([]Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	Update(ctx context.Context, id string, form *NoteForm, files upload.Manifest) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID) (*Note, error)
}
