package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingOpenAIKey is returned by Validate when no OpenAI credential is
// configured. The chat service cannot start without one.
var ErrMissingOpenAIKey = errors.New("config: OPENAI_API_KEY is not set")

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	CORSOrigins   []string
	RateLimitRPS  float64
	RateLimitBurst int

	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	LLMTimeout    time.Duration

	// Persistence
	DatabaseURL string

	// Google Sheets conversation/booking log
	GoogleServiceAccountJSON string
	GoogleSheetID            string

	// Redis conversation history
	RedisAddr     string
	RedisPassword string
	HistoryWindow int
	HistoryTTL    time.Duration

	// Booking notifications
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	BookingAlertEmail string

	// Admin stats endpoint
	AdminJWTSecret string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 10),

		OpenAIAPIKey: firstEnv("OPENAI_API_KEY", "OPENAI_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		LLMTimeout:   getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT", ""),
		GoogleSheetID:            getEnv("GOOGLE_SHEET_ID", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		HistoryWindow: getEnvAsInt("HISTORY_WINDOW", 10),
		HistoryTTL:    getEnvAsDuration("HISTORY_TTL", 24*time.Hour),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Anthill IQ Assistant"),
		BookingAlertEmail: getEnv("BOOKING_ALERT_EMAIL", ""),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}
}

// Validate checks configuration that must be present at startup. Missing
// credentials for optional backends (Postgres, Redis, Sheets, SendGrid) are
// not errors; those components fall back to in-memory or stub variants.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return ErrMissingOpenAIKey
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among the given keys.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
