// internal/app/app.go
package app

import (
	"cashback-cards/internal/auth"
	"cashback-cards/internal/config"
	"cashback-cards/internal/conversation"
	"cashback-cards/internal/dispatch"
	"cashback-cards/internal/session"
	"cashback-cards/internal/storage"
	"cashback-cards/internal/storage/postgres"
	"cashback-cards/internal/storage/sqlite"
	"cashback-cards/internal/telegram"
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger ставит текстовый slog-логгер по умолчанию.
func SetupLogger(cfg config.Config) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
}

// OpenStorage подключает хранилище по STORAGE_DRIVER и применяет схему.
func OpenStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	var (
		store storage.Storage
		err   error
	)
	switch cfg.StorageDriver {
	case "postgres":
		store, err = postgres.Connect(ctx, cfg.DBConn)
	case "sqlite":
		store, err = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}

	if err := store.InitializeSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	slog.Info("🗄️ Хранилище готово", "driver", cfg.StorageDriver)
	return store, nil
}

// NewBot собирает контроллер диалога, очереди пользователей и транспорт Telegram.
func NewBot(ctx context.Context, cfg config.Config, store storage.Storage, api telegram.API) *telegram.Bot {
	controller := conversation.NewController(store, session.NewStore(), conversation.CategoryPolicy(cfg.CategoryPolicy))
	if err := cfg.ValidateAPI(); err == nil {
		controller.WithTokenIssuer(auth.NewTokenService(cfg))
	} else {
		slog.Info("Команда /token выключена", "reason", err)
	}
	return telegram.NewBot(api, controller, dispatch.New(ctx))
}
