package handlers

import (
	"net/http"
	"time"

	"sensiblenews/internal/middleware"
	"sensiblenews/internal/services"
	"sensiblenews/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin    *services.AdminService
	reports  *services.ReportService
	comments *services.CommentService
}

func NewAdminHandler(admin *services.AdminService, reports *services.ReportService, comments *services.CommentService) *AdminHandler {
	return &AdminHandler{admin: admin, reports: reports, comments: comments}
}

// PendingReports lists unresolved abuse reports.
func (h *AdminHandler) PendingReports(c *gin.Context) {
	reports, err := h.reports.Pending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

type resolveRequest struct {
	Resolution  string `json:"resolution" binding:"required"`
	HideComment bool   `json:"hide_comment"`
}

// ResolveReport marks a report resolved, optionally hiding the reported
// comment. Resolving twice is rejected with a conflict.
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resolution is required"})
		return
	}

	admin := middleware.CurrentUser(c)
	reportID := utils.StringToUint(c.Param("id"))
	if err := h.reports.Resolve(admin, reportID, req.Resolution, req.HideComment); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ReviewQueue lists comments flagged for review.
func (h *AdminHandler) ReviewQueue(c *gin.Context) {
	comments, err := h.comments.ReviewQueue()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Keywords lists the keyword rules.
func (h *AdminHandler) Keywords(c *gin.Context) {
	rules, err := h.admin.Keywords()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": rules})
}

type keywordRequest struct {
	Keyword     string `json:"keyword" binding:"required"`
	Action      string `json:"action" binding:"required"`
	Replacement string `json:"replacement"`
}

// UpsertKeyword creates or updates a keyword rule. The keyword cache is
// invalidated so the rule applies to the next submission.
func (h *AdminHandler) UpsertKeyword(c *gin.Context) {
	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword and action are required"})
		return
	}

	admin := middleware.CurrentUser(c)
	rule, err := h.admin.UpsertKeyword(admin, req.Keyword, req.Action, req.Replacement)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keyword": rule})
}

// DeleteKeyword removes a keyword rule.
func (h *AdminHandler) DeleteKeyword(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	if err := h.admin.DeleteKeyword(admin, utils.StringToUint(c.Param("id"))); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type shadowBanRequest struct {
	Days   int    `json:"days"` // 0 means permanent until lifted
	Reason string `json:"reason"`
}

// ShadowBan silently suppresses a user's future comments.
func (h *AdminHandler) ShadowBan(c *gin.Context) {
	var req shadowBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var until *time.Time
	if req.Days > 0 {
		t := time.Now().AddDate(0, 0, req.Days)
		until = &t
	}

	admin := middleware.CurrentUser(c)
	userID := utils.StringToUint(c.Param("id"))
	if err := h.admin.ShadowBan(admin, userID, until, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LiftShadowBan clears a user's shadow ban.
func (h *AdminHandler) LiftShadowBan(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	if err := h.admin.LiftShadowBan(admin, utils.StringToUint(c.Param("id"))); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Stats returns the dashboard aggregate.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ActionLog lists recent admin actions.
func (h *AdminHandler) ActionLog(c *gin.Context) {
	entries, err := h.admin.ActionLog(utils.StringToInt(c.Query("limit")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": entries})
}
