package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabasePath  = "starblog.db"
	defaultServerPort    = "3000"
	defaultCurrentUserID = 1
)

type Config struct {
	// DatabaseURL, when set, points at an external relational store
	// (postgres://...). When empty the service falls back to a local
	// file-backed sqlite database at DatabasePath.
	DatabaseURL  string
	DatabasePath string

	// ServerPort is the TCP port the HTTP server listens on.
	ServerPort string

	// CurrentUserID stands in for authenticated-session identity on the
	// favorites endpoints. There is no auth layer; every request acts as
	// this user.
	CurrentUserID uint

	// CORSAllowedOrigins is the origin allowlist for the CORS layer.
	CORSAllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	// heroku-style URLs use the deprecated postgres:// scheme
	dbURL := strings.Replace(os.Getenv("DATABASE_URL"), "postgres://", "postgresql://", 1)

	dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)
	port := getEnvOrDefault("PORT", defaultServerPort)
	currentUserID := getEnvIntOrDefault("DEFAULT_USER_ID", defaultCurrentUserID)

	var allowedOrigins []string
	for _, o := range strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	cfg := Config{
		DatabaseURL:        dbURL,
		DatabasePath:       dbPath,
		ServerPort:         port,
		CurrentUserID:      uint(currentUserID),
		CORSAllowedOrigins: allowedOrigins,
	}

	return cfg, nil
}
