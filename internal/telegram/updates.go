// internal/telegram/updates.go
package telegram

import (
	"cashback-cards/internal/conversation"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
)

// inbound — событие + куда отвечать.
type inbound struct {
	event      conversation.Event
	chatID     int64
	callbackID string
}

// fromUpdate переводит update Telegram в событие контроллера.
// ok == false — update не для нас (не текст, канал, inline-режим и т.п.).
func fromUpdate(update tgbotapi.Update) (inbound, bool) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		if cq.From == nil {
			return inbound{}, false
		}
		in := inbound{
			event: conversation.Event{
				UserID:   cq.From.ID,
				Username: cq.From.UserName,
				Kind:     conversation.KindCallback,
				Data:     cq.Data,
				Private:  true,
			},
			chatID:     cq.From.ID,
			callbackID: cq.ID,
		}
		if cq.Message != nil && cq.Message.Chat != nil {
			in.chatID = cq.Message.Chat.ID
			in.event.Private = cq.Message.Chat.IsPrivate()
		}
		return in, true

	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || msg.Chat == nil || msg.Text == "" {
			return inbound{}, false
		}
		ev := conversation.Event{
			UserID:   msg.From.ID,
			Username: msg.From.UserName,
			Private:  msg.Chat.IsPrivate(),
		}
		if msg.IsCommand() {
			ev.Kind = conversation.KindCommand
			ev.Text = strings.ToLower(msg.Command())
		} else {
			ev.Kind = conversation.KindText
			ev.Text = fixEncoding(msg.Text)
		}
		return inbound{event: ev, chatID: msg.Chat.ID}, true
	}
	return inbound{}, false
}

func fixEncoding(s string) string {
	// Проверим, является ли строка валидной UTF-8
	if utf8.ValidString(s) {
		return s
	}

	// Пробуем перекодировать из windows-1251
	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	// Если не получилось — заменяем невалидные символы
	return strings.ToValidUTF8(s, "")
}
