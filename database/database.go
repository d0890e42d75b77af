package database

import (
	"fmt"
	"log"
	"os"

	"artmarket-api/internal/domain/auctions"
	"artmarket-api/internal/domain/billing"
	"artmarket-api/internal/domain/profiles"
	"artmarket-api/internal/domain/users"
	"artmarket-api/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	// ✅ Auto-migrate all domain models, referenced tables first
	if err := DB.AutoMigrate(
		&users.User{},

		&profiles.ArtistProfile{},
		&profiles.GalleryProfile{},
		&profiles.CollectorProfile{},

		&works.Artwork{},

		&auctions.Auction{},
		&auctions.Bid{},

		&billing.Payment{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
