package usecase

import (
	"food-order/internal/data/repository"
	"food-order/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Menu  MenuService
	Order OrderService
}

func NewService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo.User, tokens, log),
		User:  NewUserService(repo.User, log),
		Menu:  NewMenuService(repo.Menu, log),
		Order: NewOrderService(repo.Menu, repo.Order, log),
	}
}
