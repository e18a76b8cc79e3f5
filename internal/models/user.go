package models

import "time"

type User struct {
	ID           int64        `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string       `gorm:"size:255;not null" json:"-"`
	Preferences  JSONDocument `gorm:"type:text" json:"preferences"`
	CreatedAt    time.Time    `json:"-"`
}

func (User) TableName() string {
	return "users"
}
