package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// ListenAddr returns the host:port the HTTP server binds to
func ListenAddr() string {
	host := GetEnv("HOST", "0.0.0.0")
	port := GetEnv("PORT", "3000")
	return host + ":" + port
}

// DatabaseURL returns the Postgres connection string, if one is configured.
// Empty means the embedded sqlite store is used instead.
func DatabaseURL() string {
	return GetEnv("DATABASE_URL", "")
}

// SQLitePath returns the location of the embedded database file.
// Production deployments only have a writable /tmp.
func SQLitePath() string {
	if GetEnv("APP_ENV", "") == "production" {
		return "/tmp/eco4_surveys.db"
	}
	return filepath.Join(".", "eco4_surveys.db")
}
