package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	DB      DatabaseConfig
	Redis   RedisConfig
	Insight InsightConfig
	Report  ReportConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// InsightConfig contains connection parameters for the hosted AI service
// that generates disclosure questions and transparency scores.
type InsightConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ReportConfig contains PDF export parameters.
type ReportConfig struct {
	// ExportTimeout bounds a single headless-browser export, launch included.
	ExportTimeout time.Duration
	// ChromePath optionally pins the browser binary; empty means auto-detect.
	ChromePath string
	// QuestionCacheTTL bounds how long generated question sets stay cached.
	QuestionCacheTTL time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Insight AI service
	cfg.Insight = InsightConfig{
		BaseURL: getEnv("INSIGHT_BASE_URL", "http://localhost:5001"),
		APIKey:  getEnv("INSIGHT_API_KEY", ""),
	}

	var err error
	if cfg.Insight.Timeout, err = parseDurationEnv("INSIGHT_TIMEOUT", "10s"); err != nil {
		return nil, fmt.Errorf("invalid INSIGHT_TIMEOUT: %w", err)
	}
	if cfg.Report.ExportTimeout, err = parseDurationEnv("REPORT_EXPORT_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid REPORT_EXPORT_TIMEOUT: %w", err)
	}
	if cfg.Report.QuestionCacheTTL, err = parseDurationEnv("QUESTION_CACHE_TTL", "24h"); err != nil {
		return nil, fmt.Errorf("invalid QUESTION_CACHE_TTL: %w", err)
	}
	cfg.Report.ChromePath = getEnv("CHROME_PATH", "")

	// Basic validation for DB parameters.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}
