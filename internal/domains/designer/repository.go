package designer

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for designers. Implementations:
// repository.PostgresRepository; tests use in-memory fakes.
type Repository interface {
	Create(ctx context.Context, d *Designer) (*Designer, error)

	// GetAll returns every designer, newest first.
	GetAll(ctx context.Context) ([]Designer, error)

	// GetByID / GetBySlug return ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Designer, error)
	GetBySlug(ctx context.Context, slug string) (*Designer, error)

	// GetByIDs fetches reference projections for fan-out.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Designer, error)

	// Replace overwrites the record with the given ID.
	Replace(ctx context.Context, d *Designer) (*Designer, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// IsSlugTaken reports whether another designer already owns the slug.
	// Pass uuid.Nil as excludeID on the create path.
	IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}
