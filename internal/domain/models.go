// internal/domain/models.go
package domain

type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
}

// Card — одна строка карты: карта + категория + кэшбэк.
// Карта с несколькими категориями хранится несколькими строками с одинаковым CardName.
type Card struct {
	ID       int64   `json:"card_id"`
	UserID   int64   `json:"-"`
	CardName string  `json:"card_name"`
	Category string  `json:"category"`
	Cashback float64 `json:"cashback"`
}

// CategoryRate — категория + кэшбэк (доля, 0.05 = 5%)
type CategoryRate struct {
	Category string  `json:"category"`
	Cashback float64 `json:"cashback"`
}

type Category struct {
	Code  string
	Title string
	Emoji string
}

// Categories — фиксированный список категорий, в порядке кнопок меню.
var Categories = []Category{
	{Code: "products", Title: "Продукты", Emoji: "🍏"},
	{Code: "medic", Title: "Медицина", Emoji: "🏥"},
	{Code: "fuel", Title: "Топливо", Emoji: "⛽"},
	{Code: "clothing", Title: "Вещи", Emoji: "👕"},
	{Code: "education", Title: "Образование", Emoji: "🎓"},
	{Code: "cosmetics", Title: "Косметика", Emoji: "💄"},
	{Code: "electronics", Title: "Электроника", Emoji: "📱"},
	{Code: "entertainments", Title: "Развлечения", Emoji: "🎭"},
	{Code: "restaurant", Title: "Рестораны", Emoji: "🍽️"},
	{Code: "transport", Title: "Транспорт", Emoji: "🚌"},
	{Code: "sport", Title: "Спорт", Emoji: "⚽"},
	{Code: "taxi", Title: "Такси", Emoji: "🚕"},
	{Code: "travels", Title: "Путешествия", Emoji: "✈️"},
}

func LookupCategory(code string) (Category, bool) {
	for _, c := range Categories {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

func IsKnownCategory(code string) bool {
	_, ok := LookupCategory(code)
	return ok
}
