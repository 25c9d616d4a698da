// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// AppURL is the public base URL of the application. The OAuth redirect
	// URI and all redirect targets are resolved against it.
	AppURL string `mapstructure:"APP_URL"`

	// Database Configuration
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Google OAuth Configuration
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`

	// Session Configuration. Rotating SessionSecret invalidates every
	// outstanding session; it is the only revocation mechanism.
	SessionSecret     string        `mapstructure:"SESSION_SECRET"`
	SessionCookieName string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionMaxAge     time.Duration `mapstructure:"SESSION_MAX_AGE_DAYS"`
	SessionSecure     bool          `mapstructure:"SESSION_COOKIE_SECURE"`

	// Object Storage (S3-compatible Spaces) Configuration
	StorageEndpoint  string `mapstructure:"STORAGE_ENDPOINT"`
	StorageRegion    string `mapstructure:"STORAGE_REGION"`
	StorageBucket    string `mapstructure:"STORAGE_BUCKET"`
	StorageAccessKey string `mapstructure:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `mapstructure:"STORAGE_SECRET"`
	StorageCDNHost   string `mapstructure:"STORAGE_CDN_HOST"`

	// Redirect targets for the OAuth callback. Three distinct destinations.
	LoginPath      string `mapstructure:"LOGIN_PATH"`
	PostLoginPath  string `mapstructure:"POST_LOGIN_PATH"`
	PostSignupPath string `mapstructure:"POST_SIGNUP_PATH"`

	// Outbound HTTP bounds for the identity provider and the avatar transfer.
	OAuthHTTPTimeout  time.Duration `mapstructure:"OAUTH_HTTP_TIMEOUT_SECONDS"`
	AvatarHTTPTimeout time.Duration `mapstructure:"AVATAR_HTTP_TIMEOUT_SECONDS"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("APP_URL", "http://localhost:8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "portfolio_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "")

	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_COOKIE_NAME", "__session")
	v.SetDefault("SESSION_MAX_AGE_DAYS", 365)
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("STORAGE_ENDPOINT", "https://nyc3.digitaloceanspaces.com")
	v.SetDefault("STORAGE_REGION", "nyc3")
	v.SetDefault("STORAGE_BUCKET", "campus-connect")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET", "")
	v.SetDefault("STORAGE_CDN_HOST", "nyc3.cdn.digitaloceanspaces.com")

	v.SetDefault("LOGIN_PATH", "/login")
	v.SetDefault("POST_LOGIN_PATH", "/book")
	v.SetDefault("POST_SIGNUP_PATH", "/feed")

	v.SetDefault("OAUTH_HTTP_TIMEOUT_SECONDS", 10)
	v.SetDefault("AVATAR_HTTP_TIMEOUT_SECONDS", 20)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.SessionMaxAge = time.Duration(v.GetInt("SESSION_MAX_AGE_DAYS")) * 24 * time.Hour
	cfg.OAuthHTTPTimeout = time.Duration(v.GetInt("OAUTH_HTTP_TIMEOUT_SECONDS")) * time.Second
	cfg.AvatarHTTPTimeout = time.Duration(v.GetInt("AVATAR_HTTP_TIMEOUT_SECONDS")) * time.Second

	if cfg.GoogleRedirectURI == "" {
		cfg.GoogleRedirectURI = strings.TrimSuffix(cfg.AppURL, "/") + "/oauth/callback"
	}

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return nil, fmt.Errorf("FATAL: SESSION_SECRET is not set. Sessions cannot be signed without it")
	}
	if cfg.GinMode == "release" {
		// Production always marks the session cookie Secure.
		cfg.SessionSecure = true
	}

	return &cfg, nil
}
