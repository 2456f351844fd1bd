package models

import (
	"time"
)

// Keyword rule actions.
const (
	KeywordActionBlock   = "block"
	KeywordActionFlag    = "flag"
	KeywordActionReplace = "replace"
)

// ModerationKeyword is one keyword rule. Matching is case-insensitive and the
// keyword text is unique, so editing a rule replaces the previous action.
type ModerationKeyword struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Keyword     string `gorm:"uniqueIndex;size:100;not null" json:"keyword"`
	Action      string `gorm:"size:10;not null" json:"action"` // block, flag, replace
	Replacement string `gorm:"size:100" json:"replacement"`    // only used by replace rules
	CreatedByID uint   `gorm:"index" json:"created_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
