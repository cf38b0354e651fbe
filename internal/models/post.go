package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a media link shared by a user. MediaURL is stored raw; MediaType
// is derived at read time by the classifier and never persisted.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	MediaURL  string         `gorm:"not null" json:"post"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MediaType string         `gorm:"-" json:"media_type,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
