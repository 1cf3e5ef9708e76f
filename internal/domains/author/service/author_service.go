package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/internal/shared/utils"
)

type authorService struct {
	repo   author.Repository
	images upload.Store
}

func NewAuthorService(repo author.Repository, images upload.Store) author.Service {
	return &authorService{repo: repo, images: images}
}

func (s *authorService) Create(ctx context.Context, form *author.AuthorForm, files upload.Manifest) (a *author.Author, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", author.ErrValidation, verr)
	}

	pic, ok := files.Image("authorPic")
	if !ok {
		return nil, fmt.Errorf("%w: authorPic", author.ErrMissingImage)
	}

	slug := utils.GenerateSlug(form.Name)
	taken, err := s.repo.IsSlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, author.ErrSlugTaken
	}

	created, err := s.repo.Create(ctx, &author.Author{
		Name:            strings.TrimSpace(form.Name),
		Slug:            slug,
		Title:           form.Title,
		Bio:             form.Bio,
		MetaTitle:       form.MetaTitle,
		MetaDescription: form.MetaDescription,
		AuthorPic:       pic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, author.ErrNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *authorService) Update(ctx context.Context, id string, form *author.AuthorForm, files upload.Manifest) (a *author.Author, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	authorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid author id", author.ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", author.ErrValidation, verr)
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
				return nil, author.ErrSlugTaken
			}
			updated.Slug = newSlug
		}
		updated.Name = name
	}
	updated.Title = form.Title
	updated.Bio = form.Bio
	updated.MetaTitle = form.MetaTitle
	updated.MetaDescription = form.MetaDescription

	var replaced upload.Image
	if newPic, ok := files.Image("authorPic"); ok {
		replaced = existing.AuthorPic
		updated.AuthorPic = newPic
	}

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	if !replaced.IsZero() {
		upload.Cleanup(ctx, s.images, replaced)
	}
	return saved, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}

	upload.Cleanup(ctx, s.images, existing.AuthorPic)
	return existing, nil
}
