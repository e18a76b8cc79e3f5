package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/types"
)

type MoodHandler struct {
	recipeService service.IRecipeService
}

func NewMoodHandler(recipeService service.IRecipeService) *MoodHandler {
	return &MoodHandler{recipeService: recipeService}
}

// FindRecipes handles POST /api/mood
func (h *MoodHandler) FindRecipes(c *gin.Context) {
	var req types.MoodRequest
	if !bindJSON(c, &req) {
		return
	}

	recipes, err := h.recipeService.FindRecipesByMood(c.Request.Context(), req.MoodName)
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// ListMoods handles GET /api/moods
func (h *MoodHandler) ListMoods(c *gin.Context) {
	moods, err := h.recipeService.ListMoods(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch moods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"moods": moods})
}
