package models

// Mood is a named emotional category used as a recipe lookup key.
type Mood struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (Mood) TableName() string {
	return "moods"
}

// RecipeMood joins recipes and moods.
type RecipeMood struct {
	ID       int64   `gorm:"primaryKey" json:"id"`
	RecipeID int64   `gorm:"not null;index" json:"recipe_id"`
	MoodID   int64   `gorm:"not null;index" json:"mood_id"`
	Recipe   *Recipe `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Mood     *Mood   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (RecipeMood) TableName() string {
	return "recipe_moods"
}
