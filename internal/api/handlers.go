package api

import (
	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/service"
)

// Services groups the service implementations the handlers depend on.
type Services struct {
	Auth     service.IAuthService
	Profile  service.IProfileService
	Recipes  service.IRecipeService
	Feedback service.IFeedbackService
	External service.IExternalRecipeService
}

// Handlers holds one handler per resource.
type Handlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Mood      *MoodHandler
	Recipe    *RecipeHandler
	Favorites *FavoritesHandler
	Feedback  *FeedbackHandler
	External  *ExternalHandler
	Health    *HealthHandler
}

func NewHandlers(svc Services, db *gorm.DB) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.Auth),
		Profile:   NewProfileHandler(svc.Profile),
		Mood:      NewMoodHandler(svc.Recipes),
		Recipe:    NewRecipeHandler(svc.Recipes),
		Favorites: NewFavoritesHandler(svc.Recipes),
		Feedback:  NewFeedbackHandler(svc.Feedback),
		External:  NewExternalHandler(svc.External),
		Health:    NewHealthHandler(db),
	}
}
