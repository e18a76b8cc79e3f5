package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/types"
)

type FavoritesHandler struct {
	recipeService service.IRecipeService
}

func NewFavoritesHandler(recipeService service.IRecipeService) *FavoritesHandler {
	return &FavoritesHandler{recipeService: recipeService}
}

// owner parses :id and checks it against the token's user id.
func (h *FavoritesHandler) owner(c *gin.Context) (int64, bool) {
	pathID, ok := int64Param(c, "id", "Invalid user ID")
	if !ok {
		return 0, false
	}
	userID, ok := currentUserID(c)
	if !ok {
		return 0, false
	}
	if pathID != userID {
		respondError(c, service.ErrForbidden, "")
		return 0, false
	}
	return userID, true
}

// List handles GET /api/users/:id/favorites
func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := h.owner(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.GetFavoriteRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": recipes})
}

// Add handles POST /api/users/:id/favorites
func (h *FavoritesHandler) Add(c *gin.Context) {
	userID, ok := h.owner(c)
	if !ok {
		return
	}

	var req types.FavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.recipeService.FavoriteRecipe(c.Request.Context(), userID, *req.RecipeID); err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe added to favorites"})
}

// Remove handles DELETE /api/users/:id/favorites/:recipeId
func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID, ok := h.owner(c)
	if !ok {
		return
	}
	recipeID, ok := int64Param(c, "recipeId", "Invalid recipe ID")
	if !ok {
		return
	}

	if err := h.recipeService.UnfavoriteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from favorites"})
}
