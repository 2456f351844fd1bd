package main

import (
	"log"

	"sensiblenews/internal/config"
	"sensiblenews/internal/db"
	"sensiblenews/internal/middleware"
	"sensiblenews/internal/moderation"
	"sensiblenews/internal/router"
	"sensiblenews/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	db.Init()

	// Moderation pipeline: keyword store -> TTL snapshot cache -> engine
	keywordStore := moderation.NewGormKeywordStore(db.DB)
	keywordCache := moderation.NewKeywordCache(keywordStore, cfg.KeywordCacheTTL, cfg.FailClosed)
	engine := moderation.NewEngine(keywordCache, cfg.AutoHideThreshold)

	// Services
	postService := services.NewPostService(db.DB)
	commentService := services.NewCommentService(db.DB, engine)
	reportService := services.NewReportService(db.DB, cfg.AutoHideThreshold)
	adminService := services.NewAdminService(db.DB, engine)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(config.DefaultSessionCookieName, store))

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r, postService, commentService, reportService, adminService)

	log.Printf("SensibleNews server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
