package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Optional Redis; empty disables leaderboard caching and token revocation.
	RedisURL            string
	LeaderboardCacheTTL time.Duration

	UploadDir        string
	MaxUploadBytes   int64
	CloudinaryURL    string
	CloudinaryFolder string

	// Directory with catalog YAML overrides; empty uses embedded defaults.
	CatalogDir string

	CORSOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("APP_ENV", "development"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTIssuer:           getEnv("JWT_ISSUER", "skilllens"),
		JWTTTLMinutes:       getEnvInt("JWT_TTL_MINUTES", 60*24),
		RedisURL:            os.Getenv("REDIS_URL"),
		LeaderboardCacheTTL: time.Duration(getEnvInt("LEADERBOARD_CACHE_TTL_SECONDS", 30)) * time.Second,
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_MB", 15)) << 20,
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "resumes"),
		CatalogDir:          os.Getenv("CATALOG_DIR"),
		CORSOrigins:         getEnv("CORS_ORIGINS", "*"),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 20),
		RateLimitWindow:     time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

// Validate reports missing settings the service cannot start without.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DatabaseURL) == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	if c.JWTTTLMinutes <= 0 {
		return errors.New("JWT_TTL_MINUTES must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
