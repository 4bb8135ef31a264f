package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const devJWTSecret = "default_super_secret_key"

// Config holds application configuration sourced from environment variables
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatasetPath string
	CORSOrigins []string
}

// Load reads configs/.env when present, then the process environment
func Load() Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Debug().Msg("No configs/.env file found or error loading it")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults
func FromEnv() Config {
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "postgres")
	dbSslMode := getEnv("DB_SSLMODE", "disable")

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode,
		JWTSecret:   os.Getenv("JWT_SECRET"),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
		DatasetPath: getEnv("DATASET_PATH", "trial_task.json"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:5174")),
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		cfg.JWTSecret = devJWTSecret // development fallback only
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
