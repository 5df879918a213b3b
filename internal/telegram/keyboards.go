// internal/telegram/keyboards.go
package telegram

import (
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// categoryKeyboard — inline-клавиатура с категориями, по одной в строке.
func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Title, c.Code),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func addCardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Добавить карту", conversation.AddCardCallback),
	))
}

func finishKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(conversation.FinishAddingText),
	))
	kb.ResizeKeyboard = true
	return kb
}

func replyMarkup(m conversation.Markup) any {
	switch m {
	case conversation.MarkupCategories:
		return categoryKeyboard()
	case conversation.MarkupAddCard:
		return addCardKeyboard()
	case conversation.MarkupFinish:
		return finishKeyboard()
	case conversation.MarkupRemove:
		return tgbotapi.NewRemoveKeyboard(false)
	default:
		return nil
	}
}
