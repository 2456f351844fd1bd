package handlers

import (
	"net/http"

	"sensiblenews/internal/middleware"
	"sensiblenews/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
	reports  *services.ReportService
}

func NewCommentHandler(comments *services.CommentService, reports *services.ReportService) *CommentHandler {
	return &CommentHandler{comments: comments, reports: reports}
}

type createCommentRequest struct {
	Content   string `json:"content" binding:"required"`
	ParentCid string `json:"parent_cid"`
}

// Create submits a comment (or reply) on a post. A blocked submission comes
// back as a 422 with the block reason; a shadow-banned author gets the same
// 201 everyone else gets.
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	user := middleware.CurrentUser(c)
	comment, err := h.comments.Create(user, c.Param("pid"), req.ParentCid, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Delete removes a comment the current user owns (admins may delete any).
func (h *CommentHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.comments.Delete(user, c.Param("cid")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type reportRequest struct {
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details"`
}

// Report files an abuse report against a comment.
func (h *CommentHandler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	user := middleware.CurrentUser(c)
	report, err := h.reports.Create(user, c.Param("cid"), req.Reason, req.Details)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}
