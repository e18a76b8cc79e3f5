package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/api"
	"github.com/pageza/moodbites/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(h *api.Handlers, tokens middleware.TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/", api.Root)
	router.GET("/health", h.Health.Check)

	v := router.Group("/api")
	v.GET("/health", h.Health.Check)
	v.GET("/moods", h.Mood.ListMoods)
	v.POST("/mood", h.Mood.FindRecipes)
	v.GET("/recipes/:id", h.Recipe.GetRecipe)
	v.GET("/external-recipes", h.External.ListRecipes)

	users := v.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)
	}

	// Protected routes
	protected := v.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/users/profile", h.Profile.GetProfile)

		favorites := protected.Group("/users/:id/favorites")
		{
			favorites.GET("", h.Favorites.List)
			favorites.POST("", h.Favorites.Add)
			favorites.DELETE("/:recipeId", h.Favorites.Remove)
		}

		protected.POST("/feedback", h.Feedback.CreateFeedback)
	}

	return router
}
