package models

import (
	"time"
)

type UserReport struct {
	ID              uint  `gorm:"primaryKey" json:"id"`
	ReportingUserID uint  `gorm:"not null;index" json:"reporting_user_id"`
	ReportingUser   User  `gorm:"foreignKey:ReportingUserID" json:"reporting_user"`
	ReportedUserID  uint  `gorm:"not null;index" json:"reported_user_id"`
	ReportedUser    User  `gorm:"foreignKey:ReportedUserID" json:"reported_user"`
	CommentID       *uint `gorm:"index" json:"comment_id"`

	Reason  string `gorm:"size:200;not null" json:"reason"`
	Details string `gorm:"type:text" json:"details"`

	// One-way transition: IsResolved flips to true exactly once, with
	// Resolution recorded. Resolved reports are terminal.
	IsResolved bool   `gorm:"default:false;index" json:"is_resolved"`
	Resolution string `gorm:"size:200" json:"resolution"`

	CreatedAt time.Time `json:"created_at"`
}
