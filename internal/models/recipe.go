package models

type Recipe struct {
	ID           int64      `gorm:"primaryKey" json:"id,omitempty"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Tags         StringList `gorm:"type:text" json:"tags"`
	Instructions string     `gorm:"type:text" json:"instructions"`
}

func (Recipe) TableName() string {
	return "recipes"
}
