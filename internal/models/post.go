package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Pid        string    `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title      string    `gorm:"not null" json:"title"`
	Topic      string    `gorm:"size:50;index" json:"topic"`
	Content    string    `gorm:"type:text" json:"content"`
	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	LikeCount  int       `gorm:"default:0" json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled at query time, not stored.
	CommentCount int `gorm:"-" json:"comment_count"`
}
