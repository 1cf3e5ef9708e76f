package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/feedback"
)

type feedbackService struct {
	repo feedback.Repository
}

func NewFeedbackService(repo feedback.Repository) feedback.Service {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Create(ctx context.Context, req *feedback.FeedbackRequest) (*feedback.Feedback, error) {
	if verr := req.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", feedback.ErrValidation, verr)
	}

	created, err := s.repo.Create(ctx, &feedback.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return created, nil
}

func (s *feedbackService) GetAll(ctx context.Context) ([]feedback.Feedback, error) {
	return s.repo.GetAll(ctx)
}

func (s *feedbackService) Delete(ctx context.Context, id uuid.UUID) (*feedback.Feedback, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete feedback: %w", err)
	}
	return existing, nil
}
