package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"samajam-backend/internal/pkg/password"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Admin    AdminConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
}

// AdminConfig holds the single env-configured admin identity. The hash
// is loaded once at startup and read-only afterwards.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint           string
	AccessKey          string
	SecretKey          string
	UseSSL             bool
	PublicBaseURL      string
	MemberPhotosBucket string
	NewsImagesBucket   string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables.
// Missing admin credentials or database configuration is a startup
// failure: the process refuses to run with an undefined admin identity.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	admin, err := loadAdminConfig()
	if err != nil {
		return nil, err
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	jwtSecret := getEnv("JWT_SECRET", "default_secret")
	if jwtSecret == "default_secret" {
		log.Println("Warning: JWT_SECRET not set, using insecure default")
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Admin:    admin,
		Database: DatabaseConfig{URL: dbURL},
		JWT:      JWTConfig{Secret: jwtSecret},
		Storage:  loadStorageConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadAdminConfig loads the admin identity. Deployments supply either a
// precomputed bcrypt hash (ADMIN_PASSWORD_HASH) or a plaintext password
// (ADMIN_PASSWORD) that is hashed here at startup.
func loadAdminConfig() (AdminConfig, error) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		return AdminConfig{}, fmt.Errorf("ADMIN_USERNAME must be set")
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		plain := os.Getenv("ADMIN_PASSWORD")
		if plain == "" {
			return AdminConfig{}, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
		}
		var err error
		hash, err = password.Hash(plain)
		if err != nil {
			return AdminConfig{}, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}

	return AdminConfig{Username: username, PasswordHash: hash}, nil
}

// loadStorageConfig loads object storage config
func loadStorageConfig() StorageConfig {
	useSSL, _ := strconv.ParseBool(getEnv("STORAGE_USE_SSL", "true"))

	endpoint := getEnv("STORAGE_ENDPOINT", "localhost:9000")
	publicBase := getEnv("STORAGE_PUBLIC_URL", "")
	if publicBase == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBase = scheme + "://" + endpoint
	}

	return StorageConfig{
		Endpoint:           endpoint,
		AccessKey:          getEnv("STORAGE_ACCESS_KEY", ""),
		SecretKey:          getEnv("STORAGE_SECRET_KEY", ""),
		UseSSL:             useSSL,
		PublicBaseURL:      strings.TrimRight(publicBase, "/"),
		MemberPhotosBucket: getEnv("STORAGE_MEMBER_BUCKET", "member-photos"),
		NewsImagesBucket:   getEnv("STORAGE_NEWS_BUCKET", "news-images"),
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
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://keralasamajamvasaieast.in,https://www.keralasamajamvasaieast.in"
	}
	return origins
}
