package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/models"
)

func createMood(t *testing.T, db *gorm.DB, name string) *models.Mood {
	t.Helper()
	mood := &models.Mood{Name: name}
	require.NoError(t, db.Create(mood).Error)
	return mood
}

func createRecipe(t *testing.T, db *gorm.DB, title string, moods ...*models.Mood) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:        title,
		Description:  title + " description",
		Tags:         models.StringList{"tag"},
		Instructions: "Cook it.",
	}
	require.NoError(t, db.Create(recipe).Error)
	for _, m := range moods {
		require.NoError(t, db.Create(&models.RecipeMood{RecipeID: recipe.ID, MoodID: m.ID}).Error)
	}
	return recipe
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}
