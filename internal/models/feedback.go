package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is an append-only rating of a recipe by a user.
type Feedback struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	RecipeID  int64     `gorm:"not null;index" json:"recipe_id"`
	Rating    int       `gorm:"not null;check:chk_feedback_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comments  string    `gorm:"type:text;not null;default:''" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}
