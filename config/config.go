package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv      string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadDir   string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	CacheTTL    time.Duration
	CORSOrigins []string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads configuration from the environment. godotenv is expected to
// have been loaded by main already.
func Load() *Config {
	return &Config{
		AppEnv:      envOrDefault("APP_ENV", "prod"),
		Port:        envOrDefault("PORT", "3001"),
		JWTSecret:   envOrDefault("JWT_SECRET", "changeme"),
		JWTTTL:      time.Duration(envInt("JWT_TTL_HOURS", 24)) * time.Hour,
		UploadDir:   envOrDefault("UPLOAD_DIR", "uploads"),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     envInt("REDIS_DB", 0),
		CacheTTL:    time.Duration(envInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
	}
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
