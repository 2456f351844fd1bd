package handlers

import (
	"net/http"
	"time"

	"sensiblenews/internal/middleware"
	"sensiblenews/internal/services"
	"sensiblenews/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts    *services.PostService
	comments *services.CommentService
}

func NewPostHandler(posts *services.PostService, comments *services.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

// List returns recent posts. The list is cached briefly since it's the
// busiest read path.
func (h *PostHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get("post:list:recent"); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	posts, err := h.posts.List(20)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := gin.H{"posts": posts}
	utils.GetCache().Set("post:list:recent", payload, 1*time.Minute)
	c.JSON(http.StatusOK, payload)
}

// Detail returns one post with its rendered body and visible comment
// thread. The thread varies per viewer (own hidden comments stay visible to
// their author), so only anonymous responses are cached.
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")
	viewer := middleware.CurrentUser(c)

	cacheKey := "post:detail:" + pid
	if viewer == nil {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	post, err := h.posts.GetByPid(pid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	thread, err := h.comments.Thread(post.ID, viewer)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := gin.H{
		"post":         post,
		"content_html": utils.RenderMarkdown(post.Content),
		"comments":     thread,
	}
	if viewer == nil {
		utils.GetCache().Set(cacheKey, payload, 1*time.Minute)
	}
	c.JSON(http.StatusOK, payload)
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Topic    string `json:"topic"`
	Content  string `json:"content" binding:"required"`
	Featured bool   `json:"featured"`
}

// Create publishes a post. Admin-only, enforced by the service.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.posts.Create(user, req.Title, req.Topic, req.Content, req.Featured)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ToggleLike likes/unlikes a post for the current user.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	liked, err := h.posts.ToggleLike(user, c.Param("pid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
