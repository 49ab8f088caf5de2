package main

import (
	"log"
	"os"

	"github.com/ekralade/ministry-api/internal/auth"
	"github.com/ekralade/ministry-api/internal/chat"
	"github.com/ekralade/ministry-api/internal/config"
	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/server"
	"github.com/ekralade/ministry-api/internal/site"
	"github.com/ekralade/ministry-api/internal/storage"
	"github.com/ekralade/ministry-api/internal/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.ValidateJWTSecret(); err != nil {
		log.Fatal("❌ JWT Configuration Error: ", err)
	}
	log.Println("✅ JWT secret validated")

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("❌ ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	// ========== DATABASE SETUP ==========
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Database connection failed:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Migration failed: ", err)
	}
	log.Println("✅ Database migrated successfully")

	// ========== STORAGE SETUP ==========
	if err := storage.InitLocalStorage(); err != nil {
		log.Fatal("❌ Failed to initialize local storage:", err)
	}

	useS3 := os.Getenv("USE_S3")
	if useS3 == "true" {
		s3Region := os.Getenv("S3_REGION")
		bucketPrefix := os.Getenv("S3_BUCKET_PREFIX")
		cdnURL := os.Getenv("CDN_BASE_URL")

		if s3Region != "" {
			if err := storage.InitS3(s3Region, bucketPrefix, cdnURL); err != nil {
				log.Println("⚠️  S3 initialization failed:", err)
				log.Println("⚠️  Falling back to local storage")
				storage.SetStorageMode(true)
			} else {
				log.Printf("☁️  Using S3 (region: %s, bucket prefix: %q)", s3Region, bucketPrefix)
			}
		} else {
			log.Println("⚠️  USE_S3=true but S3_REGION not configured")
			log.Println("⚠️  Falling back to local storage")
		}
	} else {
		log.Println("💾 Using LOCAL storage mode (./uploads/)")
		storage.SetStorageMode(true)
	}

	// ========== WIRING ==========
	auth.Credentials = cfg
	site.SiteConfig = cfg
	chat.DefaultClient = chat.NewClient(cfg.AIBaseURL, cfg.AIModel, cfg.AIAPIKey)
	if cfg.AIAPIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY not set, /chat will be unavailable")
	}

	app := server.New()
	log.Printf("🚀 Server starting on %s", cfg.ServerAddr)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("❌ Server failed to start: ", err)
	}
}
