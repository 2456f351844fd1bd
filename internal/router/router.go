package router

import (
	"sensiblenews/internal/handlers"
	"sensiblenews/internal/metrics"
	"sensiblenews/internal/middleware"
	"sensiblenews/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler onto the engine. Services come in
// already constructed so cmd/server stays the single place that builds the
// moderation pipeline.
func RegisterRoutes(r *gin.Engine, posts *services.PostService, comments *services.CommentService, reports *services.ReportService, admin *services.AdminService) {
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler(posts, comments)
	commentHandler := handlers.NewCommentHandler(comments, reports)
	adminHandler := handlers.NewAdminHandler(admin, reports, comments)

	// Public routes
	r.GET("/posts", postHandler.List)
	r.GET("/posts/:pid", postHandler.Detail)

	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts/:pid/comments", commentHandler.Create)
		authorized.DELETE("/comments/:cid", commentHandler.Delete)
		authorized.POST("/comments/:cid/report", commentHandler.Report)
		authorized.POST("/posts/:pid/like", postHandler.ToggleLike)
	}

	// Admin routes
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		adminGroup.POST("/posts", postHandler.Create)

		adminGroup.GET("/reports", adminHandler.PendingReports)
		adminGroup.POST("/reports/:id/resolve", adminHandler.ResolveReport)
		adminGroup.GET("/review-queue", adminHandler.ReviewQueue)

		adminGroup.GET("/keywords", adminHandler.Keywords)
		adminGroup.POST("/keywords", adminHandler.UpsertKeyword)
		adminGroup.DELETE("/keywords/:id", adminHandler.DeleteKeyword)

		adminGroup.POST("/users/:id/shadow-ban", adminHandler.ShadowBan)
		adminGroup.DELETE("/users/:id/shadow-ban", adminHandler.LiftShadowBan)

		adminGroup.GET("/stats", adminHandler.Stats)
		adminGroup.GET("/actions", adminHandler.ActionLog)
	}
}
