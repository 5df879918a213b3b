package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cashback-cards/internal/domain"
	"cashback-cards/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "cards.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.InitializeSchema(context.Background()); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return s
}

func TestInitializeSchemaIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	if err := s.InitializeSchema(context.Background()); err != nil {
		t.Fatalf("second InitializeSchema: %v", err)
	}

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name IN ('idx_cards_user_id', 'idx_cards_category')`).Scan(&n)
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

	exists, err := s.UserExists(ctx, 42)
	if err != nil || exists {
		t.Fatalf("UserExists before create = %v, %v", exists, err)
	}

	id, err := s.CreateUser(ctx, 42, "alice")
	if err != nil || id != 42 {
		t.Fatalf("CreateUser = %d, %v", id, err)
	}

	exists, err = s.UserExists(ctx, 42)
	if err != nil || !exists {
		t.Fatalf("UserExists after create = %v, %v", exists, err)
	}

	if _, err := s.CreateUser(ctx, 42, "alice"); !errors.Is(err, storage.ErrUserExists) {
		t.Fatalf("duplicate CreateUser error = %v, want ErrUserExists", err)
	}

	created, err := s.EnsureUser(ctx, 42, "alice")
	if err != nil || created {
		t.Fatalf("EnsureUser existing = %v, %v", created, err)
	}
	created, err = s.EnsureUser(ctx, 43, "")
	if err != nil || !created {
		t.Fatalf("EnsureUser new = %v, %v", created, err)
	}
}

func TestCards(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	cards, err := s.GetCardsForUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetCardsForUser: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", cards)
	}

	if _, err := s.EnsureUser(ctx, 1, "bob"); err != nil {
		t.Fatal(err)
	}
	id, err := s.CreateCard(ctx, 1, "Gold", "fuel", 0.1)
	if err != nil || id == 0 {
		t.Fatalf("CreateCard = %d, %v", id, err)
	}
	ids, err := s.CreateCards(ctx, 1, "Gold", []domain.CategoryRate{
		{Category: "travels", Cashback: 0.15},
		{Category: "taxi", Cashback: 0.2},
	})
	if err != nil || len(ids) != 2 {
		t.Fatalf("CreateCards = %v, %v", ids, err)
	}
	// дубли разрешены
	if _, err := s.CreateCard(ctx, 1, "Gold", "fuel", 0.1); err != nil {
		t.Fatalf("duplicate CreateCard: %v", err)
	}
	if _, err := s.CreateCard(ctx, 2, "Other", "fuel", 0.3); err != nil {
		t.Fatalf("CreateCard for other user: %v", err)
	}

	cards, err = s.GetCardsForUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetCardsForUser: %v", err)
	}
	want := []struct {
		cat string
		cb  float64
	}{{"fuel", 0.1}, {"travels", 0.15}, {"taxi", 0.2}, {"fuel", 0.1}}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d: %#v", len(cards), len(want), cards)
	}
	for i, w := range want {
		c := cards[i]
		if c.CardName != "Gold" || c.UserID != 1 || c.Category != w.cat || c.Cashback != w.cb {
			t.Errorf("card[%d] = %#v, want Gold/%s/%v", i, c, w.cat, w.cb)
		}
	}
}

func TestCreateCardsRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.db.Exec(`CREATE TRIGGER reject_taxi BEFORE INSERT ON cards
		WHEN NEW.category = 'taxi'
		BEGIN SELECT RAISE(ABORT, 'taxi rejected'); END`)
	if err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	_, err = s.CreateCards(ctx, 1, "Gold", []domain.CategoryRate{
		{Category: "fuel", Cashback: 0.1},
		{Category: "taxi", Cashback: 0.2},
	})
	if err == nil {
		t.Fatal("expected error from rejected insert")
	}

	cards, err := s.GetCardsForUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected no rows after failed CreateCards, got %#v", cards)
	}
}
