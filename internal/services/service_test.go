package services

import (
	"fmt"
	"testing"
	"time"

	"sensiblenews/internal/db"
	"sensiblenews/internal/models"
	"sensiblenews/internal/moderation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named shared in-memory database (so gorm's connection
// pool sees the same data on every connection) and runs the full migration.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

// newTestEngine builds a moderation engine backed by the database's keyword
// table, with the default auto-hide threshold of 3.
func newTestEngine(t *testing.T, database *gorm.DB) *moderation.Engine {
	t.Helper()
	store := moderation.NewGormKeywordStore(database)
	cache := moderation.NewKeywordCache(store, time.Minute, false)
	return moderation.NewEngine(cache, 3)
}

func seedKeyword(t *testing.T, database *gorm.DB, keyword, action, replacement string) {
	t.Helper()
	rule := models.ModerationKeyword{
		Keyword:     keyword,
		Action:      action,
		Replacement: replacement,
	}
	if err := database.Create(&rule).Error; err != nil {
		t.Fatalf("seed keyword %q: %v", keyword, err)
	}
}

var testUserSeq int

func newTestUser(t *testing.T, database *gorm.DB, username string, admin bool) *models.User {
	t.Helper()
	testUserSeq++
	user := models.User{
		Username: username,
		Email:    fmt.Sprintf("%s%d@example.com", username, testUserSeq),
		Password: "not-a-real-hash",
		IsAdmin:  admin,
		IsActive: true,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &user
}

func newTestPost(t *testing.T, database *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	testUserSeq++
	post := models.Post{
		Pid:     fmt.Sprintf("p%07d", testUserSeq),
		UserID:  author.ID,
		Title:   "Council approves new bike lanes",
		Topic:   "local",
		Content: "The vote passed 7-2 on Tuesday.",
	}
	if err := database.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return &post
}
