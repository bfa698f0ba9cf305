package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode     string
	Port        string
	Site        string
	Database    DatabaseConfig
	Webhook     WebhookConfig
	Redis       RedisConfig
	ObjectStore ObjectStoreConfig
	Cron        CronConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// WebhookConfig holds the outbound messaging webhook configuration
type WebhookConfig struct {
	URL string
}

// RedisConfig holds the seat-count cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ObjectStoreConfig holds the S3-compatible store for supporting documents
type ObjectStoreConfig struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	PresignMinutes int
}

// Enabled reports whether attachment storage is configured
func (o ObjectStoreConfig) Enabled() bool {
	return o.Endpoint != "" && o.Bucket != ""
}

// CronConfig holds scheduled task configuration
type CronConfig struct {
	ExpirySchedule string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:     appMode,
		Port:        getEnv("PORT", "3000"),
		Site:        getEnv("SITE_CODE", "BWI2"),
		Database:    loadDatabaseConfig(appMode),
		Webhook:     WebhookConfig{URL: getEnv("WEBHOOK_URL", "")},
		Redis:       loadRedisConfig(),
		ObjectStore: loadObjectStoreConfig(),
		Cron: CronConfig{
			// Daily expiry sweep, site-local time
			ExpirySchedule: getEnv("EXPIRY_SWEEP_CRON", "30 8 * * *"),
		},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, SITE: %s]", appMode, config.Site)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "seattrack"),
	}
}

// loadRedisConfig loads the seat-count cache config. An empty REDIS_ADDR
// disables caching.
func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

// loadObjectStoreConfig loads the supporting-document store config.
// Leaving S3_ENDPOINT unset disables file attachments.
func loadObjectStoreConfig() ObjectStoreConfig {
	useSSL, _ := strconv.ParseBool(getEnv("S3_USE_SSL", "true"))
	presign, _ := strconv.Atoi(getEnv("S3_PRESIGN_MINUTES", "10080")) // 7 days
	return ObjectStoreConfig{
		Endpoint:       getEnv("S3_ENDPOINT", ""),
		AccessKey:      getEnv("S3_ACCESS_KEY", ""),
		SecretKey:      getEnv("S3_SECRET_KEY", ""),
		Bucket:         getEnv("S3_BUCKET", ""),
		UseSSL:         useSSL,
		PresignMinutes: presign,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
