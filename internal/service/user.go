//go:generate mockgen -source=user.go -destination=../mocks/user_mocks.go -package=mocks

package service

import (
	"context"

	"portfolioservice/internal/models"
)

type AccountLister interface {
	ListAccounts(ctx context.Context) ([]*models.Account, error)
}

type UserService struct {
	accounts AccountLister
}

func NewUserService(accounts AccountLister) *UserService {
	return &UserService{accounts: accounts}
}

func (s *UserService) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	if err := requireRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.accounts.ListAccounts(ctx)
}
