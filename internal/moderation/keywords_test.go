package moderation

import (
	"fmt"
	"testing"

	"sensiblenews/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openKeywordDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared in-memory database so gorm's connection pool sees the
	// same data on every connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&models.ModerationKeyword{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestGormKeywordStoreLoadBuckets(t *testing.T) {
	database := openKeywordDB(t)
	rules := []models.ModerationKeyword{
		{Keyword: "SpamLink", Action: models.KeywordActionBlock},
		{Keyword: "casino", Action: models.KeywordActionFlag},
		{Keyword: "damn", Action: models.KeywordActionReplace, Replacement: "darn"},
		// These two are invalid and must be skipped at load time.
		{Keyword: "broken", Action: models.KeywordActionReplace, Replacement: ""},
		{Keyword: "weird", Action: "unknown"},
	}
	for _, rule := range rules {
		if err := database.Create(&rule).Error; err != nil {
			t.Fatalf("seed rule %s: %v", rule.Keyword, err)
		}
	}

	store := NewGormKeywordStore(database)
	set, err := store.LoadActiveKeywords()
	if err != nil {
		t.Fatalf("LoadActiveKeywords failed: %v", err)
	}

	if !set.IsBlockedWord("spamlink") || !set.IsBlockedWord("SPAMLINK") {
		t.Error("block rules must match case-insensitively")
	}
	if !set.IsFlaggedWord("Casino") {
		t.Error("flag rules must match case-insensitively")
	}
	if set.Replacements["damn"] != "darn" {
		t.Errorf("Replacements[damn] = %q, want darn", set.Replacements["damn"])
	}
	if _, ok := set.Replacements["broken"]; ok {
		t.Error("replace rule with empty replacement must be skipped")
	}
	if set.Size() != 3 {
		t.Errorf("Size() = %d, want 3", set.Size())
	}
}

func TestGormKeywordStoreEmptyTable(t *testing.T) {
	store := NewGormKeywordStore(openKeywordDB(t))
	set, err := store.LoadActiveKeywords()
	if err != nil {
		t.Fatalf("LoadActiveKeywords failed: %v", err)
	}
	if set.Size() != 0 {
		t.Errorf("Size() = %d, want 0", set.Size())
	}
}
