package db

import (
	"log"
	"os"

	"sensiblenews/internal/models"
	"sensiblenews/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=sensiblenews port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedAdmin()
	seedKeywords()
}

// Migrate runs AutoMigrate for every model. Split out so tests can run it
// against their own database handle.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.UserReport{},
		&models.ModerationKeyword{},
		&models.AdminActionLog{},
	)
}

func seedAdmin() {
	var count int64
	DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@sensiblenews.local",
		Password: hash,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}
	log.Println("Initial admin user created")
}

func seedKeywords() {
	var count int64
	DB.Model(&models.ModerationKeyword{}).Count(&count)
	if count > 0 {
		return
	}

	// Starter rule set; administrators manage the real list.
	keywords := []models.ModerationKeyword{
		{Keyword: "freemoney", Action: models.KeywordActionBlock},
		{Keyword: "casino", Action: models.KeywordActionFlag},
		{Keyword: "giveaway", Action: models.KeywordActionFlag},
		{Keyword: "damn", Action: models.KeywordActionReplace, Replacement: "darn"},
	}

	for _, kw := range keywords {
		if err := DB.Create(&kw).Error; err != nil {
			log.Printf("Failed to seed keyword %s: %v", kw.Keyword, err)
		}
	}
	log.Println("Initial moderation keywords created")
}
