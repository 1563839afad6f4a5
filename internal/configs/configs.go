package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	RedisRevokedKeyPrefix  string
	JWTSecret              string
	TokenTTLMinutes        int
	UploadDir              string
	MaxFileUploads         int
	AllowedExtensions      []string
	DefaultPageSize        int
	MaxPageSize            int
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "task_manager.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisRevokedKeyPrefix:  getEnv("REDIS_REVOKED_KEY_PREFIX", "revoked_token:"),
		JWTSecret:              getEnv("JWT_SECRET_KEY", ""),
		TokenTTLMinutes:        getEnvAsInt("TOKEN_TTL_MINUTES", 60),
		UploadDir:              getEnv("UPLOAD_DIR", "uploads"),
		MaxFileUploads:         getEnvAsInt("MAX_FILE_UPLOADS", 3),
		AllowedExtensions:      getEnvAsSlice("ALLOWED_EXTENSIONS", []string{"pdf"}),
		DefaultPageSize:        getEnvAsInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:            getEnvAsInt("MAX_PAGE_SIZE", 100),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}
	if cfg.TokenTTLMinutes <= 0 {
		log.Fatal("TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.MaxFileUploads <= 0 {
		log.Fatal("MAX_FILE_UPLOADS must be greater than 0")
	}
	if len(cfg.AllowedExtensions) == 0 {
		log.Fatal("ALLOWED_EXTENSIONS must not be empty")
	}
	if cfg.DefaultPageSize <= 0 {
		log.Fatal("DEFAULT_PAGE_SIZE must be greater than 0")
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		log.Fatal("MAX_PAGE_SIZE must be at least DEFAULT_PAGE_SIZE")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
