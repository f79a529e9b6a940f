package repository

import (
	"swiftcard/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
	Card CardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Card: NewCardRepository(db, log),
	}
}
