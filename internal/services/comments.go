package services

import (
	"errors"
	"fmt"
	"html/template"
	"log"

	"sensiblenews/internal/metrics"
	"sensiblenews/internal/models"
	"sensiblenews/internal/moderation"
	"sensiblenews/internal/utils"

	"gorm.io/gorm"
)

// CommentService runs submissions through the moderation pipeline and owns
// the comment side of the comment/report lifecycle.
type CommentService struct {
	db     *gorm.DB
	engine *moderation.Engine
}

func NewCommentService(database *gorm.DB, engine *moderation.Engine) *CommentService {
	return &CommentService{db: database, engine: engine}
}

// Create validates and moderates a submission, then persists it with the
// engine's visibility decision attached.
//
// Blocked content is never persisted; the submitter gets a *BlockedError
// with the reason. A shadow-banned author's comment is stored hidden and
// Create still succeeds, so from their side nothing looks different.
func (s *CommentService) Create(author *models.User, postPid, parentCid, content string) (*models.Comment, error) {
	if err := ValidateComment(content); err != nil {
		return nil, err
	}

	var post models.Post
	if err := s.db.Where("pid = ?", postPid).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	var parentID *uint
	if parentCid != "" {
		var parent models.Comment
		if err := s.db.Where("cid = ? AND post_id = ?", parentCid, post.ID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("find parent comment: %w", err)
		}
		parentID = &parent.ID
	}

	// New submissions have no reports yet; the report-threshold branch only
	// matters when the engine is re-run against already-reported content.
	result, err := s.engine.Moderate(content, author, 0)
	if err != nil {
		return nil, fmt.Errorf("moderate comment: %w", err)
	}

	metrics.ModerationDecisions.WithLabelValues(result.Outcome()).Inc()
	if result.SpamScore > 0 {
		metrics.SpamScores.Observe(result.SpamScore)
	}

	if result.IsBlocked {
		return nil, &BlockedError{Reason: result.BlockReason}
	}

	comment := models.Comment{
		Cid:              utils.RandString(8),
		PostID:           post.ID,
		UserID:           author.ID,
		ParentID:         parentID,
		Content:          result.ModeratedContent,
		IsHidden:         !result.IsVisible,
		RequiresReview:   result.RequiresReview,
		ModerationReason: moderationReason(result),
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	utils.GetCache().Delete("post:detail:" + postPid)
	return &comment, nil
}

// moderationReason picks the reason string persisted on the comment row.
func moderationReason(result *moderation.Result) string {
	switch {
	case result.IsShadowBanned:
		return "Author shadow banned"
	case result.IsAutoHidden:
		return result.AutoHideReason
	case result.RequiresReview:
		return result.FlagReason
	default:
		return ""
	}
}

// Delete removes a comment. The author may delete their own; an admin may
// delete any. Replies are kept and their parent reference left dangling;
// the thread builder promotes them to top level.
func (s *CommentService) Delete(actor *models.User, cid string) error {
	var comment models.Comment
	if err := s.db.Where("cid = ?", cid).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}

	if comment.UserID != actor.ID && !actor.IsAdmin {
		return ErrForbidden
	}

	if err := s.db.Delete(&comment).Error; err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if actor.IsAdmin && comment.UserID != actor.ID {
		logAdminAction(s.db, actor.ID, "delete_comment",
			fmt.Sprintf("Deleted comment %s by user %d", comment.Cid, comment.UserID))
	}

	var post models.Post
	if err := s.db.First(&post, comment.PostID).Error; err == nil {
		utils.GetCache().Delete("post:detail:" + post.Pid)
	}
	return nil
}

// CommentNode is one comment in an assembled thread.
type CommentNode struct {
	Comment     *models.Comment `json:"comment"`
	ContentHTML template.HTML   `json:"content_html"`
	Replies     []*CommentNode  `json:"replies"`
}

// Thread loads the visible comments of a post and assembles the reply tree.
// Comments are stored flat and keyed by id; a reply whose parent is hidden
// or deleted surfaces at top level rather than disappearing with it.
//
// Hidden comments are included only for their own author (so shadow-banned
// and auto-hidden comments still look normal to the person who wrote them)
// and for administrators.
func (s *CommentService) Thread(postID uint, viewer *models.User) ([]*CommentNode, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	nodes := make(map[uint]*CommentNode, len(comments))
	var roots []*CommentNode

	for i := range comments {
		c := &comments[i]
		if c.IsHidden && !canSeeHidden(c, viewer) {
			continue
		}
		nodes[c.ID] = &CommentNode{
			Comment:     c,
			ContentHTML: utils.RenderMarkdown(c.Content),
		}
	}

	for i := range comments {
		c := &comments[i]
		node, ok := nodes[c.ID]
		if !ok {
			continue
		}
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots, nil
}

func canSeeHidden(c *models.Comment, viewer *models.User) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsAdmin || viewer.ID == c.UserID
}

// ReviewQueue lists comments flagged for administrator attention, newest
// first.
func (s *CommentService) ReviewQueue() ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").Preload("Post").
		Where("requires_review = ?", true).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("load review queue: %w", err)
	}
	return comments, nil
}

func logAdminAction(database *gorm.DB, adminID uint, action, details string) {
	entry := models.AdminActionLog{
		UserID:  adminID,
		Action:  action,
		Details: details,
	}
	if err := database.Create(&entry).Error; err != nil {
		log.Printf("Failed to log admin action %s: %v", action, err)
	}
}
