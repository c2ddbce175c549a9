package config

import (
	"log"
	"os"
	"strings"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	Env            string
	LogLevel       string
	LogFormat      string
	SeedDevData    bool
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		DatabaseURL: getEnvWithDefault("DATABASE_URL", "medsbuddy.sqlite"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Env:         getEnvWithDefault("ENV", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvWithDefault("LOG_FORMAT", "text"),
		SeedDevData: os.Getenv("SEED_DEV_DATA") == "true",
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	// Warn if using default JWT secret (insecure for production)
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production-use-openssl-rand-hex-32"
		log.Println("WARNING: Using default JWT_SECRET. Generate a secure secret with: openssl rand -hex 32")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
