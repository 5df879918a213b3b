// cmd/api/main.go
package main

import (
	"cashback-cards/internal/app"
	"cashback-cards/internal/auth"
	"cashback-cards/internal/config"
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/handler"
	"cashback-cards/internal/telegram"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg)

	if err := cfg.ValidateAPI(); err != nil {
		slog.Error("Некорректная конфигурация", "error", err)
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

	deps := handler.RouterDeps{
		Store:  store,
		Tokens: auth.NewTokenService(cfg),
		Policy: conversation.CategoryPolicy(cfg.CategoryPolicy),
	}

	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			slog.Error("Не удалось инициализировать Telegram бота", "error", err)
			os.Exit(1)
		}
		if err := setWebhook(api, cfg.WebhookBaseURL); err != nil {
			slog.Error("Не удалось установить webhook", "error", err)
			os.Exit(1)
		}
		bot = app.NewBot(ctx, cfg, store, api)
		deps.Bot = bot
	} else {
		slog.Warn("TELEGRAM_BOT_TOKEN не задан, /telegram отключён")
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           handler.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("🚀 Сервер запущен", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if bot != nil {
		bot.Wait()
	}
	if err != nil {
		slog.Error("Сервер завершил работу с ошибкой", "error", err)
		os.Exit(1)
	}
	slog.Info("👋 Сервер остановлен")
}

func setWebhook(api *tgbotapi.BotAPI, baseURL string) error {
	if baseURL == "" {
		return errors.New("WEBHOOK_BASE_URL (или RENDER_EXTERNAL_URL) не задан")
	}
	webhookURL := strings.TrimRight(baseURL, "/") + "/telegram"
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return err
	}
	if _, err := api.Request(wh); err != nil {
		return err
	}
	slog.Info("Telegram webhook установлен", "url", webhookURL)
	return nil
}
