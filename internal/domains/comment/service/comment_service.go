package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/comment"
)

type commentService struct {
	repo  comment.Repository
	blogs comment.BlogReader
}

func NewCommentService(repo comment.Repository, blogs comment.BlogReader) comment.Service {
	return &commentService{repo: repo, blogs: blogs}
}

func (s *commentService) Create(ctx context.Context, req *comment.CommentRequest) (*comment.Comment, error) {
	if verr := req.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", comment.ErrValidation, verr)
	}

	// The blog reference is stored as-is; existence is not checked.
	blogID, _ := uuid.Parse(req.Blog)

	created, err := s.repo.Create(ctx, &comment.Comment{
		Name:    strings.TrimSpace(req.Name),
		Comment: req.Comment,
		BlogID:  blogID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return created, nil
}

func (s *commentService) GetAll(ctx context.Context) ([]comment.Response, error) {
	comments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(comments))
	seen := map[uuid.UUID]bool{}
	for _, c := range comments {
		if c.BlogID != uuid.Nil && !seen[c.BlogID] {
			seen[c.BlogID] = true
			ids = append(ids, c.BlogID)
		}
	}

	refs := map[uuid.UUID]comment.BlogRef{}
	if len(ids) > 0 {
		blogs, err := s.blogs.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to expand comment blogs: %w", err)
		}
		for _, b := range blogs {
			refs[b.ID] = comment.BlogRef{ID: b.ID, Title: b.Title, Slug: b.Slug}
		}
	}

	responses := make([]comment.Response, len(comments))
	for i, c := range comments {
		responses[i] = comment.Response{Comment: c}
		if ref, ok := refs[c.BlogID]; ok {
			responses[i].Blog = &ref
		}
	}
	return responses, nil
}

func (s *commentService) Approve(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	approved, err := s.repo.SetApproved(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return approved, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return existing, nil
}
