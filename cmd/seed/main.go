// Command seed loads the built-in mood and recipe catalogue. Running it again
// leaves existing rows untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/seed"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "maximum time to spend seeding")
	flag.Parse()

	if err := run(*timeout); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run(timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.EnsureSchema(db); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stats, err := seed.Run(ctx, db, seed.DefaultCatalog())
	if err != nil {
		return err
	}
	log.Info().
		Int("moods", stats.Moods).
		Int("recipes", stats.Recipes).
		Int("mappings", stats.Mappings).
		Msg("seeding complete")
	return nil
}
