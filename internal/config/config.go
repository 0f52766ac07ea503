package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	Env       string
	AppPort   string
	JWTSecret string
	TokenTTL  time.Duration

	DBDriver string
	DBDSN    string

	BlobStore      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	S3Region       string
	S3Bucket       string
	S3Endpoint     string
	S3AccessKeyID  string
	S3SecretKey    string

	GeminiAPIKey    string
	GeminiModel     string
	AdvisoryTimeout time.Duration

	RabbitMQURL string

	RedisAddr       string
	RedisPassword   string
	AuthRateLimit   int
	AuthRateWindow  time.Duration
	CORSAllowOrigin string
	MaxUploadBytes  int
}

// devJWTSecret is only accepted when APP_ENV=dev.
const devJWTSecret = "dev_jwt_secret_change_me"

// New returns a viper instance with every default registered and environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "2h")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "jobtrack.db")
	v.SetDefault("BLOB_STORE", "memory")
	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", "resumes")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("S3_REGION", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	v.SetDefault("ADVISORY_TIMEOUT", "60s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("AUTH_RATE_WINDOW", "1m")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("MAX_UPLOAD_BYTES", 10*1024*1024)
	v.AutomaticEnv()
	return v
}

// Load reads a local .env file when present and then resolves configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	return FromViper(New())
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:             strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		AppPort:         v.GetString("APP_PORT"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        v.GetDuration("TOKEN_TTL"),
		DBDriver:        strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBDSN:           v.GetString("DATABASE_DSN"),
		BlobStore:       strings.ToLower(strings.TrimSpace(v.GetString("BLOB_STORE"))),
		MinioEndpoint:   v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  v.GetString("MINIO_SECRET_KEY"),
		MinioBucket:     v.GetString("MINIO_BUCKET"),
		MinioUseSSL:     v.GetBool("MINIO_USE_SSL"),
		S3Region:        v.GetString("S3_REGION"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Endpoint:      strings.TrimRight(v.GetString("S3_ENDPOINT"), "/"),
		S3AccessKeyID:   v.GetString("S3_ACCESS_KEY_ID"),
		S3SecretKey:     v.GetString("S3_SECRET_ACCESS_KEY"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		AdvisoryTimeout: v.GetDuration("ADVISORY_TIMEOUT"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		AuthRateLimit:   v.GetInt("AUTH_RATE_LIMIT"),
		AuthRateWindow:  v.GetDuration("AUTH_RATE_WINDOW"),
		CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGINS"),
		MaxUploadBytes:  v.GetInt("MAX_UPLOAD_BYTES"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "dev" {
			return nil, errors.New("JWT_SECRET is required")
		}
		log.Println("WARNING: JWT_SECRET is empty, using the development secret")
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.AdvisoryTimeout <= 0 {
		return nil, fmt.Errorf("ADVISORY_TIMEOUT must be positive, got %s", cfg.AdvisoryTimeout)
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite", "memory":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.BlobStore {
	case "memory":
	case "minio":
		if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
			return nil, errors.New("MINIO_ENDPOINT and MINIO_BUCKET are required for the minio blob store")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required for the s3 blob store")
		}
	default:
		return nil, fmt.Errorf("unsupported BLOB_STORE %q", cfg.BlobStore)
	}

	if cfg.RedisAddr != "" && (cfg.AuthRateLimit <= 0 || cfg.AuthRateWindow <= 0) {
		return nil, errors.New("AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be positive when REDIS_ADDR is set")
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}

	return cfg, nil
}
