package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/internal/adapters/httpapi"
	"eventhub/internal/application"
	"eventhub/internal/config"
	"eventhub/internal/domain/stats"
	"eventhub/internal/infrastructure/database"
	"eventhub/internal/infrastructure/i18n"
	"eventhub/pkg/tz"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		slog.Error("failed to load timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}
	now := func() time.Time { return time.Now().In(loc) }

	eventRepo := database.NewEventRepository(pool)
	registrationRepo := database.NewRegistrationRepository(pool)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	eventService := application.NewEventService(eventRepo).WithClock(now)
	registrationService := application.NewRegistrationService(registrationRepo)
	statsService := application.NewStatsService(registrationRepo, eventRepo, stats.Options{
		FillGaps: cfg.StatsFillGaps,
	}).WithClock(now)

	app := httpapi.NewServer(eventService, registrationService, statsService, translator)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("server listening", "addr", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
