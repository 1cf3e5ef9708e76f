package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/internal/shared/utils"
)

type designerService struct {
	repo   designer.Repository
	images upload.Store
}

func NewDesignerService(repo designer.Repository, images upload.Store) designer.Service {
	return &designerService{repo: repo, images: images}
}

// Create runs the write pipeline: validate, resolve slug, record the
// uploaded logo, persist. Any failure discards the freshly-uploaded files.
func (s *designerService) Create(ctx context.Context, form *designer.DesignerForm, files upload.Manifest) (d *designer.Designer, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", designer.ErrValidation, verr)
	}

	logo, ok := files.Image("logo")
	if !ok {
		return nil, fmt.Errorf("%w: logo", designer.ErrMissingImage)
	}

	slug := utils.GenerateSlug(form.Name)
	taken, err := s.repo.IsSlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, designer.ErrSlugTaken
	}

	created, err := s.repo.Create(ctx, &designer.Designer{
		Name:            strings.TrimSpace(form.Name),
		Slug:            slug,
		Description:     form.Description,
		MetaTitle:       form.MetaTitle,
		MetaDescription: form.MetaDescription,
		Logo:            logo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create designer: %w", err)
	}
	return created, nil
}

func (s *designerService) GetAll(ctx context.Context) ([]designer.Designer, error) {
	return s.repo.GetAll(ctx)
}

func (s *designerService) GetBySlug(ctx context.Context, slug string) (*designer.Designer, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, designer.ErrNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

// Update replaces mutable fields. The slug is recomputed only when the name
// changed, excluding the record itself from the uniqueness check. A new logo
// replaces the stored one; the old object is deleted only after the record
// persisted, so a failed write never leaves a dangling reference.
func (s *designerService) Update(ctx context.Context, slug string, form *designer.DesignerForm, files upload.Manifest) (d *designer.Designer, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", designer.ErrValidation, verr)
	}

	updated := *existing
	name := strings.TrimSpace(form.Name)
	if name != existing.Name {
		newSlug := utils.GenerateSlug(name)
		if newSlug != existing.Slug {
			taken, err := s.repo.IsSlugTaken(ctx, newSlug, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if taken {
				return nil, designer.ErrSlugTaken
			}
			updated.Slug = newSlug
		}
		updated.Name = name
	}
	updated.Description = form.Description
	updated.MetaTitle = form.MetaTitle
	updated.MetaDescription = form.MetaDescription

	var replaced upload.Image
	if newLogo, ok := files.Image("logo"); ok {
		replaced = existing.Logo
		updated.Logo = newLogo
	}

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update designer: %w", err)
	}

	if !replaced.IsZero() {
		upload.Cleanup(ctx, s.images, replaced)
	}
	return saved, nil
}

// Delete removes the record and then its stored logo (best effort).
func (s *designerService) Delete(ctx context.Context, id uuid.UUID) (*designer.Designer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete designer: %w", err)
	}

	upload.Cleanup(ctx, s.images, existing.Logo)
	return existing, nil
}
