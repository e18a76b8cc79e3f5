package models

import "time"

// Favorite marks a recipe as saved by a user. A pair is stored at most once.
type Favorite struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Recipe    *Recipe   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
