// internal/telegram/bot.go
package telegram

import (
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/dispatch"
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// API — то, что нужно от *tgbotapi.BotAPI для ответов.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// UpdateSource — long polling, реализуется *tgbotapi.BotAPI.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Handler interface {
	Handle(ctx context.Context, ev conversation.Event) conversation.Response
}

type Bot struct {
	api        API
	handler    Handler
	dispatcher *dispatch.Dispatcher
}

func NewBot(api API, handler Handler, dispatcher *dispatch.Dispatcher) *Bot {
	return &Bot{api: api, handler: handler, dispatcher: dispatcher}
}

// HandleUpdate ставит update в очередь пользователя и сразу возвращается.
// Используется и в polling, и в webhook.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	in, ok := fromUpdate(update)
	if !ok {
		slog.Debug("Update skipped", "update_id", update.UpdateID)
		return
	}

	slog.Info("📥 Получено сообщение", "user_id", in.event.UserID, "kind", in.event.Kind, "text", in.event.Text, "data", in.event.Data)
	b.dispatcher.Submit(in.event.UserID, func(ctx context.Context) {
		resp := b.handler.Handle(ctx, in.event)
		b.deliver(in, resp)
	})
}

// DrainTimeout — сколько ждать обработки уже принятых updates при остановке.
const DrainTimeout = 30 * time.Second

// Wait дожидается обработки уже принятых updates, но не дольше DrainTimeout.
func (b *Bot) Wait() {
	ctx, cancel := context.WithTimeout(context.Background(), DrainTimeout)
	defer cancel()
	if err := b.dispatcher.WaitContext(ctx); err != nil {
		slog.Warn("Не все updates обработаны до остановки", "error", err, "active_users", b.dispatcher.Active())
	}
}

// Poll читает updates через long polling, пока не отменят ctx.
func (b *Bot) Poll(ctx context.Context, source UpdateSource, timeout int) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	updates := source.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			source.StopReceivingUpdates()
			b.Wait()
			return
		case update, ok := <-updates:
			if !ok {
				b.Wait()
				return
			}
			b.HandleUpdate(update)
		}
	}
}

func (b *Bot) deliver(in inbound, resp conversation.Response) {
	if in.callbackID != "" {
		// отвечаем на callback всегда, иначе у кнопки висят "часики"
		if _, err := b.api.Request(tgbotapi.NewCallback(in.callbackID, resp.Answer)); err != nil {
			slog.Error("Failed to answer callback", "error", err, "user_id", in.event.UserID)
		}
	}

	for _, m := range resp.Messages {
		msg := tgbotapi.NewMessage(in.chatID, m.Text)
		msg.ParseMode = tgbotapi.ModeHTML
		if markup := replyMarkup(m.Markup); markup != nil {
			msg.ReplyMarkup = markup
		}
		if _, err := b.api.Send(msg); err != nil {
			slog.Error("Failed to send message", "error", err, "user_id", in.event.UserID, "chat_id", in.chatID)
		}
	}
}
