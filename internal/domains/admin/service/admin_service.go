package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"scentpress-backend/internal/domains/admin"
	"scentpress-backend/pkg/jwt"
)

type adminService struct {
	repo   admin.Repository
	tokens *jwt.Manager
}

func NewAdminService(repo admin.Repository, tokens *jwt.Manager) admin.Service {
	return &adminService{repo: repo, tokens: tokens}
}

func (s *adminService) Login(ctx context.Context, req *admin.LoginRequest) (*admin.LoginResponse, error) {
	if verr := req.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", admin.ErrValidation, verr)
	}

	account, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Unknown accounts and bad passwords get the same answer.
		return nil, admin.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &admin.LoginResponse{Token: token, Email: account.Email}, nil
}
