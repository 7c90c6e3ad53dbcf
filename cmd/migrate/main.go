package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ecoquest/ecoquest/ecoquest"
	"github.com/ecoquest/ecoquest/ecoquest/database"
	"github.com/ecoquest/ecoquest/ecoquest/logger"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := ecoquest.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customHandler := logger.NewHandler("EcoQuest-Migrate", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		logger.LogError("Schema initialization failed", err)
		os.Exit(1)
	}

	if err := db.SeedContent(ctx); err != nil {
		logger.LogError("Seeding failed", err)
		os.Exit(1)
	}

	logger.LogSystem("Migration completed successfully")
}
