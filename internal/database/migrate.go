package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/models"
)

// Schema lists the tables in dependency order.
var Schema = []interface{}{
	&models.Mood{},
	&models.Recipe{},
	&models.RecipeMood{},
	&models.User{},
	&models.Favorite{},
	&models.Feedback{},
}

// EnsureSchema creates any missing table, index or constraint. It is safe to
// run on every start; existing tables are left alone.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(Schema...); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Info().Int("tables", len(Schema)).Msg("schema ready")
	return nil
}
