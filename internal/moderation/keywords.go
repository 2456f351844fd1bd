package moderation

import (
	"fmt"
	"strings"

	"sensiblenews/internal/models"

	"gorm.io/gorm"
)

// KeywordSet is a point-in-time snapshot of the active keyword rules.
// Immutable once built; the cache swaps whole snapshots on refresh so
// readers never observe a partial update. All keys are lowercased.
type KeywordSet struct {
	Blocked      map[string]bool
	Flagged      map[string]bool
	Replacements map[string]string
}

// NewKeywordSet returns an empty snapshot.
func NewKeywordSet() *KeywordSet {
	return &KeywordSet{
		Blocked:      make(map[string]bool),
		Flagged:      make(map[string]bool),
		Replacements: make(map[string]string),
	}
}

// IsBlockedWord reports whether a single word matches a block rule.
func (s *KeywordSet) IsBlockedWord(word string) bool {
	return s.Blocked[strings.ToLower(word)]
}

// IsFlaggedWord reports whether a single word matches a flag rule.
func (s *KeywordSet) IsFlaggedWord(word string) bool {
	return s.Flagged[strings.ToLower(word)]
}

// Size returns the total rule count, for logging.
func (s *KeywordSet) Size() int {
	return len(s.Blocked) + len(s.Flagged) + len(s.Replacements)
}

// KeywordStore loads the active keyword rules in bulk.
type KeywordStore interface {
	LoadActiveKeywords() (*KeywordSet, error)
}

// GormKeywordStore reads keyword rules from the moderation_keywords table.
type GormKeywordStore struct {
	db *gorm.DB
}

func NewGormKeywordStore(db *gorm.DB) *GormKeywordStore {
	return &GormKeywordStore{db: db}
}

// LoadActiveKeywords fetches every rule and buckets it by action. Replace
// rules with an empty replacement are skipped. Rules are keyed by lowercased
// keyword, so the last row loaded for a keyword wins.
func (s *GormKeywordStore) LoadActiveKeywords() (*KeywordSet, error) {
	var rules []models.ModerationKeyword
	if err := s.db.Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("load moderation keywords: %w", err)
	}

	set := NewKeywordSet()
	for _, rule := range rules {
		keyword := strings.ToLower(rule.Keyword)
		if keyword == "" {
			continue
		}
		switch rule.Action {
		case models.KeywordActionBlock:
			set.Blocked[keyword] = true
		case models.KeywordActionFlag:
			set.Flagged[keyword] = true
		case models.KeywordActionReplace:
			if rule.Replacement != "" {
				set.Replacements[keyword] = rule.Replacement
			}
		}
	}
	return set, nil
}
