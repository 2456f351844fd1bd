package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Shadow ban state. A ban with no end date is permanent until lifted.
	IsShadowBanned    bool       `gorm:"default:false" json:"-"`
	ShadowBannedUntil *time.Time `json:"-"`
	ShadowBanReason   string     `gorm:"size:200" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShadowBanActive reports whether the user's shadow ban is currently in
// effect: the flag is set and the ban either has no end date or the end
// date is still in the future.
func (u *User) ShadowBanActive() bool {
	if !u.IsShadowBanned {
		return false
	}
	return u.ShadowBannedUntil == nil || u.ShadowBannedUntil.After(time.Now())
}
