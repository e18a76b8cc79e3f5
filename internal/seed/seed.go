// Package seed loads the mood and recipe catalogue.
package seed

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/models"
)

// RecipeSeed is a recipe together with the moods it suits.
type RecipeSeed struct {
	Title        string
	Description  string
	Tags         []string
	Instructions string
	Moods        []string
}

// Catalog is the full set of data to seed.
type Catalog struct {
	Moods   []string
	Recipes []RecipeSeed
}

// Stats counts the rows created by a run.
type Stats struct {
	Moods    int
	Recipes  int
	Mappings int
}

// Run inserts whatever part of catalog is missing inside one transaction.
// Moods are matched by name, recipes by title and mappings by the pair.
func Run(ctx context.Context, db *gorm.DB, catalog Catalog) (Stats, error) {
	var stats Stats

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moodIDs := make(map[string]int64, len(catalog.Moods))

		for _, name := range catalog.Moods {
			mood := models.Mood{Name: normalizeMood(name)}
			res := tx.Where(models.Mood{Name: mood.Name}).FirstOrCreate(&mood)
			if res.Error != nil {
				return fmt.Errorf("failed to seed mood %q: %w", name, res.Error)
			}
			stats.Moods += int(res.RowsAffected)
			moodIDs[mood.Name] = mood.ID
		}

		for _, r := range catalog.Recipes {
			recipe := models.Recipe{
				Title:        r.Title,
				Description:  r.Description,
				Tags:         models.StringList(r.Tags),
				Instructions: r.Instructions,
			}
			res := tx.Where("title = ?", r.Title).FirstOrCreate(&recipe)
			if res.Error != nil {
				return fmt.Errorf("failed to seed recipe %q: %w", r.Title, res.Error)
			}
			stats.Recipes += int(res.RowsAffected)

			for _, moodName := range r.Moods {
				moodID, ok := moodIDs[normalizeMood(moodName)]
				if !ok {
					return fmt.Errorf("recipe %q references unknown mood %q", r.Title, moodName)
				}
				mapping := models.RecipeMood{RecipeID: recipe.ID, MoodID: moodID}
				res := tx.Where("recipe_id = ? AND mood_id = ?", recipe.ID, moodID).FirstOrCreate(&mapping)
				if res.Error != nil {
					return fmt.Errorf("failed to map %q to %q: %w", r.Title, moodName, res.Error)
				}
				stats.Mappings += int(res.RowsAffected)
			}
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// normalizeMood is the stored form of a mood name.
func normalizeMood(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
