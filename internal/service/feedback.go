package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/models"
	"github.com/pageza/moodbites/backend/internal/types"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// CreateFeedback validates the rating range before anything is written and
// always appends a new row.
func (s *FeedbackService) CreateFeedback(ctx context.Context, userID int64, req *types.CreateFeedbackRequest) (*models.Feedback, error) {
	if req == nil || req.RecipeID == nil || req.Rating == nil {
		return nil, invalid("rating", "Recipe ID and rating are required")
	}
	if *req.Rating < models.MinRating || *req.Rating > models.MaxRating {
		return nil, invalid("rating", fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}

	feedback := &models.Feedback{
		UserID:   userID,
		RecipeID: *req.RecipeID,
		Rating:   *req.Rating,
	}
	if req.Comments != nil {
		feedback.Comments = *req.Comments
	}

	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return feedback, nil
}
