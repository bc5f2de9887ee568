package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Enquiry  EnquiryConfig
	Email    EmailConfig
	Redis    RedisConfig
	Features FeatureConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	CORSOrigins    string
	RateLimitMax   int
	RateLimitEvery time.Duration
}

type CatalogConfig struct {
	Source string // embedded, file, s3, database
	File   string
	Object string // object key when Source is s3
}

type DatabaseConfig struct {
	URL string
}

type StorageConfig struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
}

type EnquiryConfig struct {
	Sink           string // log, email, queue
	SubmitDelay    time.Duration
	FormIdleTTL    time.Duration
	DigestSchedule string
	SweepSchedule  string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	SalesEmail   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FeatureConfig struct {
	EnquiryForm      bool
	FarmlandSections bool
	EnquiryAckEmail  bool
}

func Load() *Config {
	godotenv.Load() // a missing .env is fine, the environment wins

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			Env:            getEnv("APP_ENV", "development"),
			CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
			RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 10),
			RateLimitEvery: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(getEnv("CATALOG_SOURCE", "embedded")),
			File:   getEnv("CATALOG_FILE", "internal/catalog/data/projects.json"),
			Object: getEnv("CATALOG_OBJECT", "catalog/projects.json"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Storage: StorageConfig{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET_NAME", ""),
		},
		Enquiry: EnquiryConfig{
			Sink:           strings.ToLower(getEnv("LEAD_SINK", "log")),
			SubmitDelay:    getEnvDuration("SUBMIT_DELAY", 1500*time.Millisecond),
			FormIdleTTL:    getEnvDuration("FORM_IDLE_TTL", 2*time.Hour),
			DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 19 * * *"),
			SweepSchedule:  getEnv("SWEEP_SCHEDULE", "@every 10m"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Sungraze Projects <noreply@sungrazeprojects.com>"),
			SalesEmail:   getEnv("SALES_EMAIL", "info@sungrazeprojects.com"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Features: FeatureConfig{
			EnquiryForm:      getEnvBool("FEATURE_ENQUIRY_FORM", true),
			FarmlandSections: getEnvBool("FEATURE_FARMLAND_SECTIONS", true),
			EnquiryAckEmail:  getEnvBool("FEATURE_ENQUIRY_ACK_EMAIL", false),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts values like "1500ms" or "2h".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
