// Command seed bulk-loads a synthetic dataset for load-testing the filter
// engine and the dashboard aggregations. Inserts happen as one transaction
// per entity type, so a failed run leaves no partial data behind.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/infrastructure/database"
	"eventhub/internal/seed"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	profilePath := flag.String("profile", "seed.toml", "path to the TOML seed profile")
	seedValue := flag.Uint64("seed", uint64(time.Now().UnixNano()), "RNG seed (fixed value = reproducible dataset)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	profile, err := seed.LoadProfile(*profilePath)
	if err != nil {
		slog.Error("failed to load seed profile", "error", err)
		os.Exit(1)
	}
	from, to, err := profile.Window()
	if err != nil {
		slog.Error("invalid seed window", "error", err)
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

	eventRepo := database.NewEventRepository(pool)
	registrationRepo := database.NewRegistrationRepository(pool)
	generator := seed.NewGenerator(*seedValue)

	start := time.Now()
	slog.Info("seeding events", "count", profile.Events)
	events := generator.Events(profile.Events, from, to)
	if err := eventRepo.CreateBatch(ctx, events); err != nil {
		slog.Error("failed to insert events", "error", err)
		os.Exit(1)
	}

	eventIDs := make([]uint, len(events))
	for i, event := range events {
		eventIDs[i] = event.ID
	}

	slog.Info("seeding registrations", "count", profile.Registrations)
	registrations, err := generator.Registrations(profile.Registrations, eventIDs, from, to)
	if err != nil {
		slog.Error("failed to generate registrations", "error", err)
		os.Exit(1)
	}
	if err := registrationRepo.CreateBatch(ctx, registrations); err != nil {
		slog.Error("failed to insert registrations", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete",
		"events", len(events),
		"registrations", len(registrations),
		"elapsed", time.Since(start).String(),
	)
}
