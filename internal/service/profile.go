package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/models"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the user record. A token may outlive its user, so a
// missing row is reported as ErrUserNotFound rather than an internal error.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Select("id", "username", "preferences").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &user, nil
}
