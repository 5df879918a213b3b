// internal/ranking/ranking.go
package ranking

import (
	"cashback-cards/internal/domain"
	"strconv"
	"strings"
)

// BestCardForCategory ищет карту с максимальным кэшбэком в категории.
// Категория сравнивается точно, с учётом регистра. При равенстве побеждает первая карта.
// ok == false — в категории нет ни одной карты.
func BestCardForCategory(cards []domain.Card, category string) (best domain.Card, ok bool) {
	for _, c := range cards {
		if c.Category != category {
			continue
		}
		if !ok || c.Cashback > best.Cashback {
			best, ok = c, true
		}
	}
	return best, ok
}

// FormatRate переводит долю в проценты для показа: 0.15 -> "15%".
func FormatRate(cashback float64) string {
	s := strconv.FormatFloat(cashback*100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s + "%"
}
