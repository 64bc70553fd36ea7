package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting read from the environment.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	JWTSecret string
	JWTTTL    time.Duration
	AdminUser string
	AdminPass string

	CORSOrigins []string

	BackupEnabled  bool
	BackupDir      string
	BackupInterval time.Duration
	BackupMaxAge   time.Duration
	BackupMaxCount int
}

// Load reads an optional .env file and then the process environment.
// Missing or malformed values fall back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	return Config{
		Port:     getenv("PORT", "8080"),
		DBPath:   getenv("DB_PATH", "./data/sisvendas.db"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    duration("JWT_TTL", 24*time.Hour),
		AdminUser: os.Getenv("ADMIN_USER"),
		AdminPass: os.Getenv("ADMIN_PASS"),

		CORSOrigins: list("CORS_ORIGINS", []string{"*"}),

		BackupEnabled:  boolean("BACKUP_ENABLED", true),
		BackupDir:      getenv("BACKUP_DIR", "./data/backups"),
		BackupInterval: duration("BACKUP_INTERVAL", 24*time.Hour),
		BackupMaxAge:   duration("BACKUP_MAX_AGE", 30*24*time.Hour),
		BackupMaxCount: integer("BACKUP_MAX_COUNT", 10),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func list(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
