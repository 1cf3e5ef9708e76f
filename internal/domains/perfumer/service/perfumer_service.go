package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/internal/shared/utils"
)

type perfumerService struct {
	repo   perfumer.Repository
	images upload.Store
}

func NewPerfumerService(repo perfumer.Repository, images upload.Store) perfumer.Service {
	return &perfumerService{repo: repo, images: images}
}

func (s *perfumerService) Create(ctx context.Context, form *perfumer.PerfumerForm, files upload.Manifest) (p *perfumer.Perfumer, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", perfumer.ErrValidation, verr)
	}

	image, ok := files.Image("image")
	if !ok {
		return nil, fmt.Errorf("%w: image", perfumer.ErrMissingImage)
	}

	slug := utils.GenerateSlug(form.Name)
	taken, err := s.repo.IsSlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, perfumer.ErrSlugTaken
	}

	created, err := s.repo.Create(ctx, &perfumer.Perfumer{
		Name:            strings.TrimSpace(form.Name),
		Slug:            slug,
		Title:           form.Title,
		Intro:           form.Intro,
		Bio:             form.Bio,
		MetaTitle:       form.MetaTitle,
		MetaDescription: form.MetaDescription,
		Image:           image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create perfumer: %w", err)
	}
	return created, nil
}

func (s *perfumerService) GetAll(ctx context.Context) ([]perfumer.Perfumer, error) {
	return s.repo.GetAll(ctx)
}

func (s *perfumerService) GetBySlug(ctx context.Context, slug string) (*perfumer.Perfumer, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, perfumer.ErrNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *perfumerService) Update(ctx context.Context, id string, form *perfumer.PerfumerForm, files upload.Manifest) (p *perfumer.Perfumer, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	perfumerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid perfumer id", perfumer.ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, perfumerID)
	if err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", perfumer.ErrValidation, verr)
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
				return nil, perfumer.ErrSlugTaken
			}
			updated.Slug = newSlug
		}
		updated.Name = name
	}
	updated.Title = form.Title
	updated.Intro = form.Intro
	updated.Bio = form.Bio
	updated.MetaTitle = form.MetaTitle
	updated.MetaDescription = form.MetaDescription

	var replaced upload.Image
	if newImage, ok := files.Image("image"); ok {
		replaced = existing.Image
		updated.Image = newImage
	}

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update perfumer: %w", err)
	}

	if !replaced.IsZero() {
		upload.Cleanup(ctx, s.images, replaced)
	}
	return saved, nil
}

func (s *perfumerService) Delete(ctx context.Context, id uuid.UUID) (*perfumer.Perfumer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete perfumer: %w", err)
	}

	upload.Cleanup(ctx, s.images, existing.Image)
	return existing, nil
}
