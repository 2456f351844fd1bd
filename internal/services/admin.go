package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sensiblenews/internal/models"
	"sensiblenews/internal/moderation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminService covers the administrator side of moderation: keyword rule
// management, shadow bans, and dashboard stats.
type AdminService struct {
	db     *gorm.DB
	engine *moderation.Engine
}

func NewAdminService(database *gorm.DB, engine *moderation.Engine) *AdminService {
	return &AdminService{db: database, engine: engine}
}

// UpsertKeyword creates or updates a keyword rule and invalidates the
// keyword cache so the rule takes effect without waiting for expiry.
func (s *AdminService) UpsertKeyword(admin *models.User, keyword, action, replacement string) (*models.ModerationKeyword, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, &ValidationError{Messages: []string{"Keyword is required"}}
	}

	switch action {
	case models.KeywordActionBlock, models.KeywordActionFlag:
		replacement = ""
	case models.KeywordActionReplace:
		if strings.TrimSpace(replacement) == "" {
			return nil, &ValidationError{Messages: []string{"Replace rules need a replacement"}}
		}
	default:
		return nil, &ValidationError{Messages: []string{"Action must be block, flag or replace"}}
	}

	rule := models.ModerationKeyword{
		Keyword:     keyword,
		Action:      action,
		Replacement: replacement,
		CreatedByID: admin.ID,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "keyword"}},
		DoUpdates: clause.AssignmentColumns([]string{"action", "replacement", "created_by_id", "updated_at"}),
	}).Create(&rule).Error
	if err != nil {
		return nil, fmt.Errorf("upsert keyword: %w", err)
	}

	s.engine.InvalidateKeywordCache()
	logAdminAction(s.db, admin.ID, "upsert_keyword",
		fmt.Sprintf("Keyword %q action %s", keyword, action))
	return &rule, nil
}

// DeleteKeyword removes a keyword rule and invalidates the cache.
func (s *AdminService) DeleteKeyword(admin *models.User, keywordID uint) error {
	res := s.db.Delete(&models.ModerationKeyword{}, keywordID)
	if res.Error != nil {
		return fmt.Errorf("delete keyword: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.engine.InvalidateKeywordCache()
	logAdminAction(s.db, admin.ID, "delete_keyword", fmt.Sprintf("Keyword id %d", keywordID))
	return nil
}

// Keywords lists every keyword rule.
func (s *AdminService) Keywords() ([]models.ModerationKeyword, error) {
	var rules []models.ModerationKeyword
	if err := s.db.Order("keyword ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return rules, nil
}

// ShadowBan sets a shadow ban on a user. A nil until makes the ban
// permanent until lifted. Admins cannot be shadow banned.
func (s *AdminService) ShadowBan(admin *models.User, userID uint, until *time.Time, reason string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if user.IsAdmin {
		return ErrForbidden
	}

	updates := map[string]interface{}{
		"is_shadow_banned":    true,
		"shadow_banned_until": until,
		"shadow_ban_reason":   reason,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return fmt.Errorf("shadow ban user: %w", err)
	}

	detail := fmt.Sprintf("Shadow banned user %d", userID)
	if until != nil {
		detail = fmt.Sprintf("Shadow banned user %d until %s", userID, until.Format(time.RFC3339))
	}
	logAdminAction(s.db, admin.ID, "shadow_ban", detail)
	return nil
}

// LiftShadowBan clears a user's shadow ban.
func (s *AdminService) LiftShadowBan(admin *models.User, userID uint) error {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_shadow_banned":    false,
			"shadow_banned_until": nil,
			"shadow_ban_reason":   "",
		})
	if res.Error != nil {
		return fmt.Errorf("lift shadow ban: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	logAdminAction(s.db, admin.ID, "lift_shadow_ban", fmt.Sprintf("User %d", userID))
	return nil
}

// DashboardStats is the admin overview aggregate.
type DashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalPosts     int64 `json:"total_posts"`
	TotalComments  int64 `json:"total_comments"`
	HiddenComments int64 `json:"hidden_comments"`
	PendingReports int64 `json:"pending_reports"`
	PendingReviews int64 `json:"pending_reviews"`
	ShadowBanned   int64 `json:"shadow_banned"`
	CommentsToday  int64 `json:"comments_today"`
}

// Stats aggregates the dashboard counters.
func (s *AdminService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalPosts, s.db.Model(&models.Post{})},
		{&stats.TotalComments, s.db.Model(&models.Comment{})},
		{&stats.HiddenComments, s.db.Model(&models.Comment{}).Where("is_hidden = ?", true)},
		{&stats.PendingReports, s.db.Model(&models.UserReport{}).Where("is_resolved = ?", false)},
		{&stats.PendingReviews, s.db.Model(&models.Comment{}).Where("requires_review = ?", true)},
		{&stats.ShadowBanned, s.db.Model(&models.User{}).Where("is_shadow_banned = ?", true)},
		{&stats.CommentsToday, s.db.Model(&models.Comment{}).Where("created_at >= ?", startOfDay)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return stats, nil
}

// ActionLog lists recent admin actions, newest first.
func (s *AdminService) ActionLog(limit int) ([]models.AdminActionLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.AdminActionLog
	err := s.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load action log: %w", err)
	}
	return entries, nil
}
