package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/service"
	"github.com/pageza/moodbites/backend/internal/types"
)

type FeedbackHandler struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackHandler(feedbackService service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedback handles POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.feedbackService.CreateFeedback(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully"})
}
