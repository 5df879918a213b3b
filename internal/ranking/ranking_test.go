package ranking

import (
	"testing"

	"cashback-cards/internal/domain"
)

func TestBestCardForCategory(t *testing.T) {
	cards := []domain.Card{
		{ID: 1, CardName: "A", Category: "fuel", Cashback: 0.10},
		{ID: 2, CardName: "B", Category: "fuel", Cashback: 0.20},
		{ID: 3, CardName: "C", Category: "taxi", Cashback: 0.50},
		{ID: 4, CardName: "D", Category: "taxi", Cashback: 0.50},
		{ID: 5, CardName: "E", Category: "sport", Cashback: -0.2},
		{ID: 6, CardName: "F", Category: "sport", Cashback: -0.1},
		{ID: 7, CardName: "G", Category: "Fuel", Cashback: 0.90},
	}

	tests := []struct {
		name     string
		category string
		wantID   int64
		wantOK   bool
	}{
		{name: "max wins", category: "fuel", wantID: 2, wantOK: true},
		{name: "tie keeps first", category: "taxi", wantID: 3, wantOK: true},
		{name: "negative values compared as signed", category: "sport", wantID: 6, wantOK: true},
		{name: "case sensitive", category: "Fuel", wantID: 7, wantOK: true},
		{name: "not found", category: "travels", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestCardForCategory(cards, tt.category)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("got card %d (%s), want %d", got.ID, got.CardName, tt.wantID)
			}
		})
	}
}

func TestBestCardForCategoryEmpty(t *testing.T) {
	if _, ok := BestCardForCategory(nil, "fuel"); ok {
		t.Fatal("expected not found for empty card list")
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.15, "15%"},
		{0.05, "5%"},
		{0.055, "5.5%"},
		{0.1234, "12.34%"},
		{1, "100%"},
		{0, "0%"},
		{-0.02, "-2%"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.in); got != tt.want {
			t.Errorf("FormatRate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
