// internal/conversation/controller.go
package conversation

import (
	"cashback-cards/internal/domain"
	"cashback-cards/internal/parser"
	"cashback-cards/internal/ranking"
	"cashback-cards/internal/session"
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
)

type EventKind int

const (
	KindText EventKind = iota
	KindCommand
	KindCallback
)

func (k EventKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCommand:
		return "command"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Event — входящее сообщение или нажатие кнопки, независимо от транспорта.
type Event struct {
	UserID   int64
	Username string
	Kind     EventKind
	// Text — текст сообщения; для KindCommand — имя команды без "/".
	Text string
	// Data — payload inline-кнопки.
	Data    string
	Private bool
}

type Markup int

const (
	MarkupNone Markup = iota
	MarkupCategories
	MarkupAddCard
	MarkupFinish
	MarkupRemove
)

type Message struct {
	Text   string
	Markup Markup
}

type Response struct {
	// Answer — всплывающий ответ на нажатие inline-кнопки.
	Answer   string
	Messages []Message
}

func (r Response) Empty() bool {
	return r.Answer == "" && len(r.Messages) == 0
}

type CategoryPolicy string

const (
	// PolicyLenient сохраняет неизвестные категории и предупреждает о них.
	PolicyLenient CategoryPolicy = "lenient"
	// PolicyStrict отклоняет карту, если в ней есть неизвестная категория.
	PolicyStrict CategoryPolicy = "strict"
)

type Store interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	EnsureUser(ctx context.Context, userID int64, username string) (bool, error)
	GetCardsForUser(ctx context.Context, userID int64) ([]domain.Card, error)
	CreateCards(ctx context.Context, userID int64, cardName string, rates []domain.CategoryRate) ([]int64, error)
}

// TokenIssuer выдаёт JWT для REST API, реализуется *auth.TokenService.
type TokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

type Controller struct {
	store    Store
	sessions *session.Store
	policy   CategoryPolicy
	tokens   TokenIssuer
}

func NewController(store Store, sessions *session.Store, policy CategoryPolicy) *Controller {
	if policy == "" {
		policy = PolicyLenient
	}
	return &Controller{store: store, sessions: sessions, policy: policy}
}

// WithTokenIssuer включает команду /token. Без неё команда отвечает, что API выключен.
func (c *Controller) WithTokenIssuer(tokens TokenIssuer) *Controller {
	c.tokens = tokens
	return c
}

// Handle обрабатывает одно событие. Вызовы для одного пользователя должны идти последовательно.
func (c *Controller) Handle(ctx context.Context, ev Event) Response {
	log := slog.With("user_id", ev.UserID)

	created, err := c.ensureUser(ctx, ev)
	if err != nil {
		log.Error("Failed to register user", "error", err)
		return failure(ev)
	}
	if created {
		// первое обращение: сразу к добавлению карты
		log.Info("📥 New user registered", "username", ev.Username)
		c.sessions.Set(ev.UserID, session.AwaitingCardInput)
		return Response{Messages: []Message{
			{Text: textWelcome},
			{Text: textCardTemplate, Markup: MarkupFinish},
		}}
	}

	switch ev.Kind {
	case KindCallback:
		// любое нажатие inline-кнопки прерывает добавление карты
		c.sessions.Clear(ev.UserID)
		return c.handleCallback(ctx, ev)
	case KindCommand:
		return c.handleCommand(ctx, ev)
	default:
		if c.sessions.Get(ev.UserID) == session.AwaitingCardInput {
			return c.handleCardInput(ctx, ev)
		}
		if !ev.Private {
			return Response{}
		}
		return reply(textIncorrectCommand, MarkupNone)
	}
}

func (c *Controller) ensureUser(ctx context.Context, ev Event) (bool, error) {
	exists, err := c.store.UserExists(ctx, ev.UserID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	return c.store.EnsureUser(ctx, ev.UserID, ev.Username)
}

func (c *Controller) handleCommand(ctx context.Context, ev Event) Response {
	switch ev.Text {
	case "start", "categories":
		return reply(textChooseCategory, MarkupCategories)
	case "add_card":
		return reply(textAddCard, MarkupAddCard)
	case "help":
		return reply(textHelp, MarkupNone)
	case "cards":
		return c.listCards(ctx, ev)
	case "token":
		return c.issueToken(ev)
	default:
		if !ev.Private {
			return Response{}
		}
		return reply(textIncorrectCommand, MarkupNone)
	}
}

func (c *Controller) handleCallback(ctx context.Context, ev Event) Response {
	if ev.Data == AddCardCallback {
		c.sessions.Set(ev.UserID, session.AwaitingCardInput)
		return reply(textCardTemplate, MarkupFinish)
	}

	category := ev.Data
	cards, err := c.store.GetCardsForUser(ctx, ev.UserID)
	if err != nil {
		slog.Error("GetCardsForUser failed", "error", err, "user_id", ev.UserID, "category", category)
		return failure(ev)
	}

	label := categoryLabel(category)
	best, ok := ranking.BestCardForCategory(cards, category)
	if !ok {
		return Response{Answer: fmt.Sprintf("В категории %s нет карт", label)}
	}

	slog.Info("Best card found", "user_id", ev.UserID, "category", category, "card", best.CardName, "cashback", best.Cashback)
	return Response{
		Answer: fmt.Sprintf("Вы выбрали %s", label),
		Messages: []Message{{
			Text: fmt.Sprintf("Лучшая ваша карта: <b>%s</b>\nКешбек: %s",
				html.EscapeString(best.CardName), ranking.FormatRate(best.Cashback)),
		}},
	}
}

func (c *Controller) handleCardInput(ctx context.Context, ev Event) Response {
	if strings.TrimSpace(ev.Text) == FinishAddingText {
		c.sessions.Clear(ev.UserID)
		return reply(textAddingCompleted, MarkupRemove)
	}

	sub, err := parser.Parse(ev.Text)
	if err != nil {
		var fe *parser.FormatError
		if errors.As(err, &fe) {
			slog.Info("Card format error", "user_id", ev.UserID, "line", fe.Line, "reason", fe.Reason)
		}
		return reply(textFormatError, MarkupNone)
	}

	unknown := unknownCategories(sub.Order)
	if len(unknown) > 0 && c.policy == PolicyStrict {
		return reply(textFormatError+"\nНеизвестные категории: "+codeList(unknown), MarkupNone)
	}

	rates := sub.Rates()
	if _, err := c.store.CreateCards(ctx, ev.UserID, sub.CardName, rates); err != nil {
		slog.Error("CreateCards failed", "error", err, "user_id", ev.UserID, "card", sub.CardName)
		return failure(ev)
	}
	slog.Info("✅ Card saved", "user_id", ev.UserID, "card", sub.CardName, "categories", len(rates))

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Карта <b>%s</b> сохранена:\n", html.EscapeString(sub.CardName))
	for _, r := range rates {
		fmt.Fprintf(&b, "• %s: %s\n", html.EscapeString(categoryLabel(r.Category)), ranking.FormatRate(r.Cashback))
	}
	if len(unknown) > 0 {
		fmt.Fprintf(&b, "\n⚠️ Этих категорий нет в меню: %s\n", codeList(unknown))
	}
	b.WriteString("\nОтправьте следующую карту или нажмите «" + FinishAddingText + "»")
	return reply(b.String(), MarkupNone)
}

func (c *Controller) listCards(ctx context.Context, ev Event) Response {
	cards, err := c.store.GetCardsForUser(ctx, ev.UserID)
	if err != nil {
		slog.Error("GetCardsForUser failed", "error", err, "user_id", ev.UserID)
		return failure(ev)
	}
	if len(cards) == 0 {
		return reply(textNoCards, MarkupNone)
	}

	// группируем по названию карты, сохраняя порядок добавления
	var names []string
	byName := make(map[string][]domain.Card)
	for _, card := range cards {
		if _, ok := byName[card.CardName]; !ok {
			names = append(names, card.CardName)
		}
		byName[card.CardName] = append(byName[card.CardName], card)
	}

	lines := []string{"💳 <b>Ваши карты</b>"}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("\n<b>%s</b>", html.EscapeString(name)))
		for _, card := range byName[name] {
			lines = append(lines, fmt.Sprintf("- %s: %s", html.EscapeString(categoryLabel(card.Category)), ranking.FormatRate(card.Cashback)))
		}
	}
	return reply(strings.Join(lines, "\n"), MarkupNone)
}

// issueToken отдаёт JWT только в личном чате: user_id подтверждён самим Telegram.
func (c *Controller) issueToken(ev Event) Response {
	if !ev.Private {
		return reply(textTokenPrivateOnly, MarkupNone)
	}
	if c.tokens == nil {
		return reply(textTokenDisabled, MarkupNone)
	}
	token, err := c.tokens.GenerateToken(ev.UserID)
	if err != nil {
		slog.Error("GenerateToken failed", "error", err, "user_id", ev.UserID)
		return failure(ev)
	}
	return reply(fmt.Sprintf(textTokenIssued, html.EscapeString(token)), MarkupNone)
}

func reply(text string, markup Markup) Response {
	return Response{Messages: []Message{{Text: text, Markup: markup}}}
}

func failure(ev Event) Response {
	resp := reply(textStorageError, MarkupNone)
	if ev.Kind == KindCallback {
		resp.Answer = "Ошибка"
	}
	return resp
}

func unknownCategories(codes []string) []string {
	var unknown []string
	for _, code := range codes {
		if !domain.IsKnownCategory(code) {
			unknown = append(unknown, code)
		}
	}
	return unknown
}

func codeList(codes []string) string {
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = "<code>" + html.EscapeString(c) + "</code>"
	}
	return strings.Join(quoted, ", ")
}
