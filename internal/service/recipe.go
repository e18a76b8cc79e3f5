package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/models"
)

// RecipeService handles recipe, mood and favorite operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListMoods returns every known mood ordered by name.
func (s *RecipeService) ListMoods(ctx context.Context) ([]models.Mood, error) {
	moods := []models.Mood{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&moods).Error; err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return moods, nil
}

// FindRecipesByMood matches the mood name exactly after lower-casing and
// returns the recipes mapped to it. An unknown mood is an error; a known mood
// without recipes yields an empty list.
func (s *RecipeService) FindRecipesByMood(ctx context.Context, moodName string) ([]models.Recipe, error) {
	name := strings.ToLower(strings.TrimSpace(moodName))
	if name == "" {
		return nil, invalid("moodName", "Mood name is required")
	}

	var mood models.Mood
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&mood).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrMoodNotFound
		}
		return nil, fmt.Errorf("failed to find mood: %w", err)
	}

	recipes := []models.Recipe{}
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_moods ON recipe_moods.recipe_id = recipes.id").
		Where("recipe_moods.mood_id = ?", mood.ID).
		Order("recipes.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recipes for mood: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// GetFavoriteRecipes returns the recipes a user has favorited, oldest first.
func (s *RecipeService) GetFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return recipes, nil
}

// FavoriteRecipe records a favorite. Adding an existing pair succeeds without
// creating a second row.
func (s *RecipeService) FavoriteRecipe(ctx context.Context, userID, recipeID int64) error {
	fav := models.Favorite{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&fav).Error
	if err != nil && !database.IsUniqueViolation(err) {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// UnfavoriteRecipe removes a favorite if present.
func (s *RecipeService) UnfavoriteRecipe(ctx context.Context, userID, recipeID int64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
