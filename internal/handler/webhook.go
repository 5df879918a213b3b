// internal/handler/webhook.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler реализуется *telegram.Bot.
type UpdateHandler interface {
	HandleUpdate(update tgbotapi.Update)
}

// TelegramWebhook принимает update и сразу отвечает 200:
// обработка идёт в очереди пользователя.
func TelegramWebhook(bot UpdateHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Ошибка парсинга обновления", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		bot.HandleUpdate(update)
		c.Status(http.StatusOK)
	}
}
