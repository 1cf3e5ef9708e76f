package blog

import (
	"context"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/upload"
)

type Repository interface {
	Create(ctx context.Context, b *Blog) (*Blog, error)
	GetAll(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Blog, error)
	Replace(ctx context.Context, b *Blog) (*Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

// Narrow read surfaces the blog service needs for reference fan-out.
// Each is satisfied by the matching domain repository.
type (
	DesignerReader interface {
		GetByIDs(ctx context.Context, ids []uuid.UUID) ([]designer.Designer, error)
	}
	PerfumerReader interface {
		GetByIDs(ctx context.Context, ids []uuid.UUID) ([]perfumer.Perfumer, error)
	}
	AuthorReader interface {
		GetByIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error)
	}
	NoteReader interface {
		GetByIDs(ctx context.Context, ids []uuid.UUID) ([]note.Note, error)
	}
)

type Service interface {
	Create(ctx context.Context, form *BlogForm, files upload.Manifest) (*Blog, error)
	GetAll(ctx context.Context) ([]Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	Update(ctx context.Context, id string, form *BlogForm, files upload.Manifest) (*Blog, error)
	Delete(ctx context.Context, id uuid.UUID) (*Blog, error)
}
