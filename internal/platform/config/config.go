package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAPIBaseURL     = "http://localhost:3000/api"
	defaultHTTPTimeout    = 15 * time.Second
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry      = time.Hour
	defaultJWTIssuer      = "money-tracker"
	defaultLoginRateLimit = "5-M"
)

// Config holds application configuration for both the tracker CLI and the
// reference server. Each binary reads the fields it needs.
type Config struct {
	// Client
	APIBaseURL      string
	OwnerID         string
	CredentialsFile string
	ReportDir       string
	HTTPTimeout     time.Duration
	LogLevel        slog.Level

	// Server
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string
	FrontendBaseURL   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("API_BASE_URL", defaultAPIBaseURL)
	v.SetDefault("OWNER_ID", "1")
	v.SetDefault("CREDENTIALS_FILE", defaultCredentialsFile())
	v.SetDefault("REPORT_DIR", ".")
	v.SetDefault("HTTP_TIMEOUT", defaultHTTPTimeout.String())
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "3000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("LOGIN_RATE_LIMIT", defaultLoginRateLimit)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		APIBaseURL:      strings.TrimSpace(v.GetString("API_BASE_URL")),
		OwnerID:         strings.TrimSpace(v.GetString("OWNER_ID")),
		CredentialsFile: v.GetString("CREDENTIALS_FILE"),
		ReportDir:       v.GetString("REPORT_DIR"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		LoginRateLimit:  v.GetString("LOGIN_RATE_LIMIT"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
		slog.Warn("API_BASE_URL is empty, using default", slog.String("api_base_url", cfg.APIBaseURL))
	}
	if cfg.OwnerID == "" {
		slog.Warn("OWNER_ID not set, record commands will fail until it is")
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	cfg.HTTPTimeout = durationOr(v.GetString("HTTP_TIMEOUT"), defaultHTTPTimeout, "HTTP_TIMEOUT")
	cfg.JWTExpiryDuration = durationOr(v.GetString("JWT_EXPIRY_DURATION"), defaultJWTExpiry, "JWT_EXPIRY_DURATION")

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, defaulting to info", slog.String("value", v.GetString("LOG_LEVEL")))
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			slog.Error("JWT_SECRET not set in production, using default insecure key")
		} else {
			slog.Debug("JWT_SECRET not set, using default insecure key")
		}
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}

	return cfg, nil
}

func durationOr(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default",
				slog.String("key", key),
				slog.String("value", raw),
				slog.String("default", fallback.String()))
		}
		return fallback
	}
	return d
}

func defaultCredentialsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".money-tracker-credentials.json"
	}
	return filepath.Join(dir, "money-tracker", "credentials.json")
}
