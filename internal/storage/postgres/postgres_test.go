package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cashback-cards/internal/domain"
	"cashback-cards/internal/storage"
)

// Тесты идут против живой базы: TEST_DATABASE_URL=postgres://... go test ./internal/storage/postgres
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.InitializeSchema(ctx); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return s
}

// testUserID выдаёт id, не пересекающийся с другими прогонами, и удаляет его данные после теста.
func testUserID(t *testing.T, s *Storage) int64 {
	t.Helper()
	id := time.Now().UnixNano() / 1000
	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = s.db.Exec(ctx, "DELETE FROM cards WHERE user_id = $1", id)
		_, _ = s.db.Exec(ctx, "DELETE FROM users WHERE user_id = $1", id)
	})
	return id
}

func TestInitializeSchemaIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	if err := s.InitializeSchema(context.Background()); err != nil {
		t.Fatalf("second InitializeSchema: %v", err)
	}

	var n int
	err := s.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM pg_indexes WHERE indexname IN ('idx_cards_user_id', 'idx_cards_category')`).Scan(&n)
	if err != nil {
		t.Fatalf("query indexes: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 indexes, got %d", n)
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	userID := testUserID(t, s)

	exists, err := s.UserExists(ctx, userID)
	if err != nil || exists {
		t.Fatalf("UserExists before create = %v, %v", exists, err)
	}

	id, err := s.CreateUser(ctx, userID, "alice")
	if err != nil || id != userID {
		t.Fatalf("CreateUser = %d, %v", id, err)
	}

	exists, err = s.UserExists(ctx, userID)
	if err != nil || !exists {
		t.Fatalf("UserExists after create = %v, %v", exists, err)
	}

	if _, err := s.CreateUser(ctx, userID, "alice"); !errors.Is(err, storage.ErrUserExists) {
		t.Fatalf("second CreateUser error = %v, want ErrUserExists", err)
	}

	created, err := s.EnsureUser(ctx, userID, "alice")
	if err != nil || created {
		t.Fatalf("EnsureUser on existing = %v, %v", created, err)
	}
}

func TestCards(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	userID := testUserID(t, s)

	cards, err := s.GetCardsForUser(ctx, userID)
	if err != nil || cards == nil || len(cards) != 0 {
		t.Fatalf("GetCardsForUser on empty = %v, %v", cards, err)
	}

	if _, err := s.EnsureUser(ctx, userID, ""); err != nil {
		t.Fatal(err)
	}
	ids, err := s.CreateCards(ctx, userID, "Gold", []domain.CategoryRate{
		{Category: "travels", Cashback: 0.15},
		{Category: "fuel", Cashback: 0.05},
	})
	if err != nil || len(ids) != 2 {
		t.Fatalf("CreateCards = %v, %v", ids, err)
	}
	if _, err := s.CreateCard(ctx, userID, "Silver", "fuel", 0.2); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}

	cards, err = s.GetCardsForUser(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		name, category string
		cashback       float64
	}{
		{"Gold", "travels", 0.15},
		{"Gold", "fuel", 0.05},
		{"Silver", "fuel", 0.2},
	}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i, w := range want {
		c := cards[i]
		if c.CardName != w.name || c.Category != w.category || c.Cashback != w.cashback || c.UserID != userID {
			t.Errorf("card %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestCreateCardsRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	userID := testUserID(t, s)
	if _, err := s.EnsureUser(ctx, userID, ""); err != nil {
		t.Fatal(err)
	}

	// PostgreSQL не принимает NUL в text: вторая вставка падает внутри транзакции
	_, err := s.CreateCards(ctx, userID, "Gold", []domain.CategoryRate{
		{Category: "fuel", Cashback: 0.1},
		{Category: "bad\x00code", Cashback: 0.2},
	})
	if err == nil {
		t.Fatal("expected CreateCards to fail")
	}

	cards, err := s.GetCardsForUser(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected rollback, got %d cards", len(cards))
	}
}
