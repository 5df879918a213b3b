// cmd/bot/main.go
package main

import (
	"cashback-cards/internal/app"
	"cashback-cards/internal/config"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg)

	if cfg.TelegramToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		slog.Error("Не удалось подключиться к хранилищу", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("Не удалось инициализировать Telegram бота", "error", err)
		os.Exit(1)
	}

	// long polling не работает, пока у бота висит webhook
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		slog.Warn("Не удалось снять webhook", "error", err)
	}

	bot := app.NewBot(ctx, cfg, store, api)
	slog.Info("🤖 Бот запущен", "username", api.Self.UserName, "storage", cfg.StorageDriver)

	bot.Poll(ctx, api, cfg.PollTimeout)
	slog.Info("👋 Бот остановлен")
}
