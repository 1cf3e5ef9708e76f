package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/category"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := s.repo.IsNameTaken(ctx, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, category.ErrNameTaken
	}

	created, err := s.repo.Create(ctx, &category.Category{Name: name})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]category.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.CategoryRequest) (*category.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", category.ErrValidation, err)
	}

	name := strings.TrimSpace(req.Name)
	if !strings.EqualFold(name, existing.Name) {
		taken, err := s.repo.IsNameTaken(ctx, name, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if taken {
			return nil, category.ErrNameTaken
		}
	}

	updated := *existing
	updated.Name = name

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return saved, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return existing, nil
}
