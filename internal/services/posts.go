package services

import (
	"errors"
	"fmt"
	"strings"

	"sensiblenews/internal/models"
	"sensiblenews/internal/utils"

	"gorm.io/gorm"
)

// PostService covers the news-post surface the moderation core hangs off:
// admins author posts, readers list/read and like them.
type PostService struct {
	db *gorm.DB
}

func NewPostService(database *gorm.DB) *PostService {
	return &PostService{db: database}
}

// Create publishes a news post. Authoring is an administrator action.
func (s *PostService) Create(author *models.User, title, topic, content string, featured bool) (*models.Post, error) {
	if !author.IsAdmin {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Messages: []string{"Title is required"}}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Messages: []string{"Content is required"}}
	}

	post := models.Post{
		Pid:        utils.RandString(8),
		UserID:     author.ID,
		Title:      title,
		Topic:      topic,
		Content:    content,
		IsFeatured: featured,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	utils.GetCache().Delete("post:list:recent")
	return &post, nil
}

// List returns recent posts, featured first, with comment counts filled in.
// Hidden comments stay out of the counts readers see.
func (s *PostService) List(limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 20
	}

	var posts []models.Post
	err := s.db.Preload("User").
		Order("is_featured DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	for i := range posts {
		var count int64
		s.db.Model(&models.Comment{}).
			Where("post_id = ? AND is_hidden = ?", posts[i].ID, false).
			Count(&count)
		posts[i].CommentCount = int(count)
	}
	return posts, nil
}

// GetByPid fetches one post by its public id.
func (s *PostService) GetByPid(pid string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").Where("pid = ?", pid).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

// ToggleLike likes or unlikes a post for a user and keeps the counter in
// step. Returns whether the post is liked after the call.
func (s *PostService) ToggleLike(user *models.User, pid string) (bool, error) {
	post, err := s.GetByPid(pid)
	if err != nil {
		return false, err
	}

	liked := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("post_id = ? AND user_id = ?", post.ID, user.ID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(post).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error; err != nil {
				return err
			}
			return tx.Model(post).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	return liked, nil
}
