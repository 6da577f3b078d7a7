package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	LockoutThreshold   int
	LockoutDurationMin int
	InactivityLimitMin int
	MaxActiveSessions  int
	PasswordExpiryDays int

	MFAIssuer       string
	BackupCodeCount int

	GeoLookupTimeoutSec int

	AlertProvider string // "smtp" or "resend"
	AlertFrom     string
	AlertAPIKey   string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string

	FrontendURL    string
	AllowedOrigins []string
}

// Load reads configuration from config/<env>.env (if present) and the
// process environment. Environment variables win over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	if err := godotenv.Load(fmt.Sprintf("config/%s.env", env)); err != nil {
		log.Printf("no config/%s.env file found, relying on environment", env)
	}

	return &Config{
		Env:   env,
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),

		LockoutThreshold:   getEnvAsInt("LOCKOUT_THRESHOLD", 5),
		LockoutDurationMin: getEnvAsInt("LOCKOUT_DURATION", 15),
		InactivityLimitMin: getEnvAsInt("SESSION_INACTIVITY_LIMIT", 30),
		MaxActiveSessions:  getEnvAsInt("MAX_ACTIVE_SESSIONS", 5),
		PasswordExpiryDays: getEnvAsInt("PASSWORD_EXPIRY_DAYS", 90),

		MFAIssuer:       getEnv("MFA_ISSUER", "login-security"),
		BackupCodeCount: getEnvAsInt("BACKUP_CODE_COUNT", 10),

		GeoLookupTimeoutSec: getEnvAsInt("GEO_LOOKUP_TIMEOUT", 5),

		AlertProvider: getEnv("ALERT_PROVIDER", "smtp"),
		AlertFrom:     getEnv("ALERT_FROM", "noreply@localhost"),
		AlertAPIKey:   getEnv("ALERT_API_KEY", ""),
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),

		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryMin) * time.Minute
}

func (c *Config) LockoutDuration() time.Duration {
	return time.Duration(c.LockoutDurationMin) * time.Minute
}

func (c *Config) InactivityLimit() time.Duration {
	return time.Duration(c.InactivityLimitMin) * time.Minute
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	parts := strings.Split(valStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
