// internal/storage/sqlite/sqlite.go
package sqlite

import (
	"cashback-cards/internal/domain"
	"cashback-cards/internal/storage"
	"cashback-cards/internal/storage/migrations"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Storage struct {
	db *sql.DB
}

var _ storage.Storage = (*Storage)(nil)

func Open(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// одна запись за раз, иначе SQLITE_BUSY под нагрузкой
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("Failed to close sqlite", "error", err)
	}
}

func (s *Storage) InitializeSchema(ctx context.Context) error {
	if err := migrations.Up(ctx, s.db, goose.DialectSQLite3); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}
	return nil
}

// === UserStorage ===

func (s *Storage) UserExists(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE user_id = ?", userID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
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
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user_id, username)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, sql.NullString{String: username, Valid: username != ""})
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

// === CardStorage ===

func (s *Storage) GetCardsForUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT card_id, user_id, card_name, category, cashback
		FROM cards
		WHERE user_id = ?
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

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertCard(ctx context.Context, db execer, userID int64, cardName, category string, cashback float64) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO cards (user_id, card_name, category, cashback)
		VALUES (?, ?, ?, ?)
	`, userID, cardName, category, cashback)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Storage) CreateCard(ctx context.Context, userID int64, cardName, category string, cashback float64) (int64, error) {
	id, err := insertCard(ctx, s.db, userID, cardName, category, cashback)
	if err != nil {
		return 0, fmt.Errorf("insert card: %w", err)
	}
	return id, nil
}

func (s *Storage) CreateCards(ctx context.Context, userID int64, cardName string, rates []domain.CategoryRate) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(rates))
	for _, r := range rates {
		id, err := insertCard(ctx, tx, userID, cardName, r.Category, r.Cashback)
		if err != nil {
			return nil, fmt.Errorf("insert card %q/%q: %w", cardName, r.Category, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("Cards saved", "user_id", userID, "card_name", cardName, "rows", len(ids))
	return ids, nil
}
