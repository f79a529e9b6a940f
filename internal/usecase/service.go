package usecase

import (
	"swiftcard/internal/data/repository"
	"swiftcard/pkg/token"
	"swiftcard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
	Card CardService
}

func NewService(repo *repository.Repository, tokens token.Service, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, tokens, log),
		User: NewUserService(repo, log),
		Card: NewCardService(repo, log),
	}
}
