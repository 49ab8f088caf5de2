package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Admin credentials. The password is compared against a bcrypt hash when
	// ADMIN_PASSWORD_HASH is set; ADMIN_PASSWORD is the plain-text dev fallback.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// AI chat relay (OpenAI-compatible chat completions endpoint).
	AIBaseURL string
	AIModel   string
	AIAPIKey  string

	// Ministry contact details used to build outbound links.
	ContactPhone    string
	ContactEmail    string
	FacebookHandle  string
	TikTokHandle    string
	InstagramHandle string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "ministry"),

		AdminUsername:     getEnv("ADMIN_USERNAME", "ekra-abel"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		AIBaseURL: getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIModel:   getEnv("AI_MODEL", "gpt-4o-mini"),
		AIAPIKey:  getEnv("OPENAI_API_KEY", ""),

		ContactPhone:    getEnv("CONTACT_PHONE", "+2250757480317"),
		ContactEmail:    getEnv("CONTACT_EMAIL", "fabrice.fabrice.ekra@gmail.com"),
		FacebookHandle:  getEnv("FACEBOOK_HANDLE", "fabrice.ekra.754"),
		TikTokHandle:    getEnv("TIKTOK_HANDLE", "abelfabriceekra"),
		InstagramHandle: getEnv("INSTAGRAM_HANDLE", "abelfabriceekra"),
	}

	log.Println("✅ Config loaded")
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
