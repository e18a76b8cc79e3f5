package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/service"
)

type ExternalHandler struct {
	externalService service.IExternalRecipeService
}

func NewExternalHandler(externalService service.IExternalRecipeService) *ExternalHandler {
	return &ExternalHandler{externalService: externalService}
}

// ListRecipes handles GET /api/external-recipes. Every upstream failure is
// reported the same way.
func (h *ExternalHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.externalService.FetchRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch external recipes")
		return
	}

	c.JSON(http.StatusOK, recipes)
}
