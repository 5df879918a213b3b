// internal/parser/parser.go
package parser

import (
	"cashback-cards/internal/domain"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrFormat = errors.New("invalid card format")

// FormatError описывает, какая строка сообщения не подошла под шаблон.
type FormatError struct {
	Line   int // номер строки, с 1; 0 — ошибка всего сообщения
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}
	return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

type Submission struct {
	CardName   string
	Categories map[string]float64
	// Order — категории в порядке первого появления
	Order []string
}

// Rates возвращает категории в порядке Order со значениями из Categories.
func (s Submission) Rates() []domain.CategoryRate {
	rates := make([]domain.CategoryRate, 0, len(s.Order))
	for _, cat := range s.Order {
		rates = append(rates, domain.CategoryRate{Category: cat, Cashback: s.Categories[cat]})
	}
	return rates
}

// Parse разбирает сообщение вида:
//
//	Название карты
//	категория1 кешбек1
//	категория2 кешбек2
//
// Один завершающий перевод строки игнорируется, любая другая пустая строка — ошибка формата.
// Если категория повторяется, побеждает последнее значение.
func Parse(text string) (Submission, error) {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	name := strings.TrimSpace(lines[0])
	if name == "" {
		return Submission{}, &FormatError{Line: 1, Reason: "card name is empty"}
	}

	sub := Submission{
		CardName:   name,
		Categories: make(map[string]float64),
	}

	for i, line := range lines[1:] {
		lineNo := i + 2
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Submission{}, &FormatError{Line: lineNo, Reason: fmt.Sprintf("expected 2 tokens, got %d", len(fields))}
		}

		category, rateStr := fields[0], fields[1]
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return Submission{}, &FormatError{Line: lineNo, Reason: fmt.Sprintf("invalid cashback %q", rateStr)}
		}

		if _, seen := sub.Categories[category]; !seen {
			sub.Order = append(sub.Order, category)
		}
		sub.Categories[category] = rate
	}

	if len(sub.Order) == 0 {
		return Submission{}, &FormatError{Reason: "no category lines"}
	}
	return sub, nil
}
