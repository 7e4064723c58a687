package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config carries all process-wide settings, gathered once at startup. The
// signing key and hash cost never change after Load returns.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	JWTSecret  []byte
	TokenTTL   time.Duration
	BcryptCost int

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	Port string
}

func Load() *Config {
	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "healthtracker"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:  []byte(getenv("JWT_SECRET_KEY", "rural-health-tracker-secret-key-2025")),
		TokenTTL:   time.Duration(getenvInt("JWT_EXPIRES_HOURS", 168)) * time.Hour,
		BcryptCost: getenvInt("BCRYPT_COST", bcrypt.DefaultCost),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@ruralhealthtracker.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		Port: getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
