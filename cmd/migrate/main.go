// Command migrate creates the database schema and exits. The API does the same
// at startup; this is for provisioning a database ahead of the first deploy.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
}

func run() error {
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
	log.Info().Int("tables", len(database.Schema)).Msg("schema is up to date")
	return nil
}
