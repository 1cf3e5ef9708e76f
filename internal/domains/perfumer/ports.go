package perfumer

import (
	"context"

	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

type Repository interface {
	Create(ctx context.Context, p *Perfumer) (*Perfumer, error)
	GetAll(ctx context.Context) ([]Perfumer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Perfumer, error)
	GetBySlug(ctx context.Context, slug string) (*Perfumer, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Perfumer, error)
	Replace(ctx context.Context, p *Perfumer) (*Perfumer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type Service interface {
	Create(ctx context.Context, form *PerfumerForm, files upload.Manifest) (*Perfumer, error)
	GetAll(ctx context.Context) ([]Perfumer, error)
	GetBySlug(ctx context.Context, slug string) (*Perfumer, error)
	// Update takes the raw id path param; an unparseable id is a
	// validation failure and still triggers upload compensation.
	Update(ctx context.Context, id string, form *PerfumerForm, files upload.Manifest) (*Perfumer, error)
	Delete(ctx context.Context, id uuid.UUID) (*Perfumer, error)
}
