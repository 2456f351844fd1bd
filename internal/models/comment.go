package models

import (
	"time"
)

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Cid    string `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	Post   Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	// Nullable for top-level comments. Deliberately no foreign key
	// constraint: deleting a comment leaves its replies in place with a
	// dangling parent id, and the thread builder promotes them to top level.
	ParentID *uint `gorm:"index" json:"parent_id"`

	Content string `gorm:"type:text;not null" json:"content"`

	// Moderation flags, set once at creation by the moderation engine or
	// later by an administrator resolving a report. Never toggled elsewhere.
	IsHidden         bool   `gorm:"default:false;index" json:"-"`
	RequiresReview   bool   `gorm:"default:false;index" json:"-"`
	ModerationReason string `gorm:"size:200" json:"-"`
	ReportCount      int    `gorm:"default:0" json:"-"`

	ReviewedAt       *time.Time `json:"-"`
	ReviewedByUserID *uint      `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
