package service

import (
	"context"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// IRecipeService defines the interface for recipe, mood and favorite lookups
type IRecipeService interface {
	ListMoods(ctx context.Context) ([]models.Mood, error)
	FindRecipesByMood(ctx context.Context, moodName string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	GetFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	FavoriteRecipe(ctx context.Context, userID, recipeID int64) error
	UnfavoriteRecipe(ctx context.Context, userID, recipeID int64) error
}

// IFeedbackService defines the interface for feedback operations
type IFeedbackService interface {
	CreateFeedback(ctx context.Context, userID int64, req *types.CreateFeedbackRequest) (*models.Feedback, error)
}

// IExternalRecipeService fetches recipes from the third-party catalogue.
type IExternalRecipeService interface {
	FetchRecipes(ctx context.Context) ([]models.Recipe, error)
}

var (
	_ IAuthService           = (*AuthService)(nil)
	_ IProfileService        = (*ProfileService)(nil)
	_ IRecipeService         = (*RecipeService)(nil)
	_ IFeedbackService       = (*FeedbackService)(nil)
	_ IExternalRecipeService = (*ExternalRecipeService)(nil)
)
