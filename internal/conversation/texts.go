// internal/conversation/texts.go
package conversation

import (
	"cashback-cards/internal/domain"
	"fmt"
	"strings"
)

// FinishAddingText — текст reply-кнопки, завершающей ввод карт.
const FinishAddingText = "Завершить добавление"

// AddCardCallback — payload inline-кнопки "Добавить карту".
const AddCardCallback = "add"

const (
	textIncorrectCommand = "<b>❌ Неизвестная команда</b>\nИспользуйте /help для просмотра доступных команд"

	textAddingCompleted = "<b>✅ Добавление завершено</b>\nКарты успешно сохранены!\nИспользуйте /start для возврата в меню"

	textHelp = "<b>📚 Доступные команды:</b>\n\n" +
		"/start - Главное меню\n" +
		"/add_card - Добавить новую карту\n" +
		"/cards - Мои карты\n" +
		"/categories - Лучшая карта по категории\n" +
		"/token - Токен для REST API\n" +
		"/help - Эта справка\n\n" +
		"🔄 Для изменения данных просто повторно добавьте карту"

	textWelcome        = "👋 Привет! Я подскажу, какой картой выгоднее платить.\nДля начала добавьте свои карты."
	textChooseCategory = "Выберите категорию"
	textAddCard        = "Добавление новой карты"
	textFormatError    = "Ошибка формата. Используйте шаблон из примера."
	textStorageError   = "❌ Не удалось выполнить запрос, попробуйте позже."
	textNoCards        = "📭 У вас пока нет карт. Добавьте первую: /add_card"

	textTokenIssued      = "🔑 Токен для API:\n<code>%s</code>\n\nПередавайте его в заголовке <code>Authorization: Bearer ...</code>"
	textTokenPrivateOnly = "🔒 Токен выдаётся только в личном чате с ботом"
	textTokenDisabled    = "REST API не настроен"
)

var textCardTemplate = buildCardTemplate()

func buildCardTemplate() string {
	var b strings.Builder
	b.WriteString("<b>💳 Как добавить карту?</b>\n\n")
	b.WriteString("Отправьте сообщение в формате:\n\n")
	b.WriteString("<pre>\nНазвание карты\nкатегория1 кешбек1\nкатегория2 кешбек2\n...\n</pre>\n\n")
	b.WriteString("<b>🔹 Пример:</b>\n")
	b.WriteString("<pre>\nAlpha Premium\nproducts 0.05\nfuel 0.10\ntravels 0.15\ntaxi 0.20\n</pre>\n\n")
	b.WriteString("<b>📋 Список категорий</b> (кешбек указывается десятичной дробью, 0.05 = 5%):\n")
	for _, c := range domain.Categories {
		fmt.Fprintf(&b, "• <code>%s</code> - %s %s\n", c.Code, c.Emoji, c.Title)
	}
	b.WriteString("\n<i>💡 Совет: Можно добавить несколько карт подряд, затем нажмите «")
	b.WriteString(FinishAddingText)
	b.WriteString("»</i>")
	return b.String()
}

func categoryLabel(code string) string {
	if c, ok := domain.LookupCategory(code); ok {
		return c.Emoji + " " + c.Title
	}
	return code
}
