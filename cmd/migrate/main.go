// cmd/migrate/main.go
package main

import (
	"cashback-cards/internal/app"
	"cashback-cards/internal/config"
	"context"
	"log/slog"
	"os"
)

// Применяет миграции выбранного STORAGE_DRIVER и выходит.
func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg)

	store, err := app.OpenStorage(context.Background(), cfg)
	if err != nil {
		slog.Error("Миграции завершились с ошибкой", "error", err)
		os.Exit(1)
	}
	store.Close()

	slog.Info("✅ Миграции применены", "driver", cfg.StorageDriver)
}
