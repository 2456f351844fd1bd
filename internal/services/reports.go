package services

import (
	"errors"
	"fmt"
	"time"

	"sensiblenews/internal/metrics"
	"sensiblenews/internal/models"

	"gorm.io/gorm"
)

// ReportService owns abuse reports and the report-threshold side of comment
// visibility.
type ReportService struct {
	db                *gorm.DB
	autoHideThreshold int
}

func NewReportService(database *gorm.DB, autoHideThreshold int) *ReportService {
	return &ReportService{db: database, autoHideThreshold: autoHideThreshold}
}

// Create files a report against a comment. Inside one transaction it
// increments the comment's report count atomically (increment-and-read, so
// racing reports can't lose updates) and hides the comment once the count
// reaches the threshold. Multiple hides of the same comment are harmless.
func (s *ReportService) Create(reporter *models.User, commentCid, reason, details string) (*models.UserReport, error) {
	if err := ValidateReportReason(reason); err != nil {
		return nil, err
	}

	var report *models.UserReport
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.Where("cid = ?", commentCid).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find comment: %w", err)
		}

		report = &models.UserReport{
			ReportingUserID: reporter.ID,
			ReportedUserID:  comment.UserID,
			CommentID:       &comment.ID,
			Reason:          reason,
			Details:         details,
		}
		if err := tx.Create(report).Error; err != nil {
			return fmt.Errorf("create report: %w", err)
		}

		if err := tx.Model(&models.Comment{}).
			Where("id = ?", comment.ID).
			UpdateColumn("report_count", gorm.Expr("report_count + 1")).
			Error; err != nil {
			return fmt.Errorf("increment report count: %w", err)
		}

		var count int
		if err := tx.Model(&models.Comment{}).
			Select("report_count").
			Where("id = ?", comment.ID).
			Scan(&count).Error; err != nil {
			return fmt.Errorf("read report count: %w", err)
		}

		if count >= s.autoHideThreshold && !comment.IsHidden {
			updates := map[string]interface{}{
				"is_hidden":         true,
				"moderation_reason": fmt.Sprintf("Exceeded report threshold (%d reports)", count),
			}
			if err := tx.Model(&models.Comment{}).
				Where("id = ?", comment.ID).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("auto-hide comment: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ReportsCreated.Inc()
	return report, nil
}

// Pending lists unresolved reports, newest first.
func (s *ReportService) Pending() ([]models.UserReport, error) {
	var reports []models.UserReport
	err := s.db.Preload("ReportingUser").Preload("ReportedUser").
		Where("is_resolved = ?", false).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("load pending reports: %w", err)
	}
	return reports, nil
}

// Resolve marks a report resolved with the given resolution text. The
// transition is one-way: resolving an already-resolved report returns
// ErrAlreadyResolved and changes nothing.
//
// With hideComment set the reported comment is also hidden, recorded as an
// administrator action rather than an engine decision.
func (s *ReportService) Resolve(admin *models.User, reportID uint, resolution string, hideComment bool) error {
	var report models.UserReport
	if err := s.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find report: %w", err)
	}

	res := s.db.Model(&models.UserReport{}).
		Where("id = ? AND is_resolved = ?", reportID, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolution":  resolution,
		})
	if res.Error != nil {
		return fmt.Errorf("resolve report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyResolved
	}

	if hideComment && report.CommentID != nil {
		now := time.Now()
		updates := map[string]interface{}{
			"is_hidden":           true,
			"requires_review":     false,
			"moderation_reason":   "Hidden by administrator",
			"reviewed_at":         &now,
			"reviewed_by_user_id": &admin.ID,
		}
		if err := s.db.Model(&models.Comment{}).
			Where("id = ?", *report.CommentID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("hide reported comment: %w", err)
		}
	}

	logAdminAction(s.db, admin.ID, "resolve_report",
		fmt.Sprintf("Resolved report %d: %s", reportID, resolution))
	metrics.ReportsResolved.Inc()
	return nil
}
