// internal/storage/storage.go
package storage

import (
	"cashback-cards/internal/domain"
	"context"
	"errors"
)

//go:generate mockgen -destination=mock/mock_storage.go -package=mock cashback-cards/internal/storage Storage

// ErrUserExists — пользователь с таким user_id уже есть (нарушение PK).
var ErrUserExists = errors.New("user already exists")

type UserStorage interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	CreateUser(ctx context.Context, userID int64, username string) (int64, error)
	// EnsureUser создаёт пользователя, если его ещё нет. created == false, если он уже был.
	EnsureUser(ctx context.Context, userID int64, username string) (bool, error)
}

type CardStorage interface {
	GetCardsForUser(ctx context.Context, userID int64) ([]domain.Card, error)
	CreateCard(ctx context.Context, userID int64, cardName, category string, cashback float64) (int64, error)
	// CreateCards сохраняет все категории одной карты в одной транзакции.
	CreateCards(ctx context.Context, userID int64, cardName string, rates []domain.CategoryRate) ([]int64, error)
}

type SchemaStorage interface {
	InitializeSchema(ctx context.Context) error
}

type Storage interface {
	UserStorage
	CardStorage
	SchemaStorage
	Close()
}
