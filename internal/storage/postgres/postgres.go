// internal/storage/postgres/postgres.go
package postgres

import (
	"cashback-cards/internal/domain"
	"cashback-cards/internal/storage"
	"cashback-cards/internal/storage/migrations"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type Storage struct {
	db *pgxpool.Pool
}

var _ storage.Storage = (*Storage)(nil)

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// Connect открывает пул и проверяет соединение.
func Connect(ctx context.Context, dsn string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewStorage(pool), nil
}

func (s *Storage) Close() {
	s.db.Close()
}

// InitializeSchema прогоняет миграции через отдельное database/sql соединение (goose работает с *sql.DB).
func (s *Storage) InitializeSchema(ctx context.Context) error {
	sqlDB := stdlib.OpenDB(*s.db.Config().ConnConfig)
	defer sqlDB.Close()

	if err := migrations.Up(ctx, sqlDB, goose.DialectPostgres); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// === UserStorage ===

func (s *Storage) UserExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM users WHERE user_id = $1", userID).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check user: %w", err)
	}
	return true, nil
}

func (s *Storage) CreateUser(ctx context.Context, userID int64, username string) (int64, error) {
	created, err := s.EnsureUser(ctx, userID, username)
	if err != nil {
		return 0, err
	}
	if !created {
		return 0, fmt.Errorf("create user %d: %w", userID, storage.ErrUserExists)
	}
	return userID, nil
}

func (s *Storage) EnsureUser(ctx context.Context, userID int64, username string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, nullable(username))
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	created := tag.RowsAffected() == 1
	if created {
		slog.Debug("User created", "user_id", userID, "username", username)
	}
	return created, nil
}

// === CardStorage ===

func (s *Storage) GetCardsForUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := s.db.Query(ctx, `
		SELECT card_id, user_id, card_name, category, cashback
		FROM cards
		WHERE user_id = $1
		ORDER BY card_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.UserID, &c.CardName, &c.Category, &c.Cashback); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return cards, nil
}

func (s *Storage) CreateCard(ctx context.Context, userID int64, cardName, category string, cashback float64) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, insertCardSQL, userID, cardName, category, cashback).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert card: %w", err)
	}
	return id, nil
}

func (s *Storage) CreateCards(ctx context.Context, userID int64, cardName string, rates []domain.CategoryRate) ([]int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, len(rates))
	for _, r := range rates {
		var id int64
		if err := tx.QueryRow(ctx, insertCardSQL, userID, cardName, r.Category, r.Cashback).Scan(&id); err != nil {
			return nil, fmt.Errorf("insert card %q/%q: %w", cardName, r.Category, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("Cards saved", "user_id", userID, "card_name", cardName, "rows", len(ids))
	return ids, nil
}

const insertCardSQL = `
	INSERT INTO cards (user_id, card_name, category, cashback)
	VALUES ($1, $2, $3, $4)
	RETURNING card_id
`

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
