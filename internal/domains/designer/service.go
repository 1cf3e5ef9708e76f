package designer

import (
	"context"

	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

// Service runs the designer write pipeline and the public read paths.
// Write methods receive the manifest of freshly-uploaded files and are
// responsible for compensating against it on any failure.
type Service interface {
	Create(ctx context.Context, form *DesignerForm, files upload.Manifest) (*Designer, error)
	GetAll(ctx context.Context) ([]Designer, error)
	GetBySlug(ctx context.Context, slug string) (*Designer, error)
	Update(ctx context.Context, slug string, form *DesignerForm, files upload.Manifest) (*Designer, error)
	Delete(ctx context.Context, id uuid.UUID) (*Designer, error)
}
