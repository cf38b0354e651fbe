// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"unique;not null" json:"username"`
	Email      string         `gorm:"unique;not null" json:"email"`
	FullName   string         `gorm:"not null" json:"full_name"`
	Password   string         `gorm:"not null" json:"-"`
	ProfileImg string         `json:"profile_img"`
	CoverImg   string         `json:"cover_img"`
	Bio        string         `json:"bio"`
	Link       string         `json:"link"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Social-graph projections; filled from the join tables on profile
	// reads, not persisted as columns on the users table.
	Followers  []uint `gorm:"-" json:"followers"`
	Following  []uint `gorm:"-" json:"following"`
	LikedPosts []uint `gorm:"-" json:"liked_posts"`
}

// UserSummary is the directory projection used by the conversation picker.
type UserSummary struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	ProfileImg string `json:"profile_img"`
}
