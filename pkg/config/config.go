package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Email    EmailConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type EmailConfig struct {
	// ResendAPIKey enables contact notification emails when set.
	ResendAPIKey string
	From         string
	AdminEmail   string
}

type AppConfig struct {
	// Env is "development" or "production"; non-production responses
	// include internal error details.
	Env         string
	CORSOrigins string
	CleanupCron bool
	SeedDB      bool
}

func Load() *Config {
	godotenv.Load() // .env is optional; real env vars win

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Open Source Economy <noreply@opensourceeconomy.com>"),
			AdminEmail:   getEnv("ADMIN_EMAIL", ""),
		},
		App: AppConfig{
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", ""),
			CleanupCron: getEnv("CLEANUP_CRON", "") == "true",
			SeedDB:      getEnv("SEED_DB", "") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
