package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// Credentials and seats
	BcryptCost              int  `mapstructure:"BCRYPT_COST"`
	DefaultSeatLimit        int  `mapstructure:"DEFAULT_SEAT_LIMIT"`
	InviteTTLHours          int  `mapstructure:"INVITE_TTL_HOURS"`
	PasswordResetTTLMinutes int  `mapstructure:"PASSWORD_RESET_TTL_MINUTES"`
	StrictSeatLimit         bool `mapstructure:"STRICT_SEAT_LIMIT"`

	// Links embedded in emails point here
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Mail configuration
	Mailer        string `mapstructure:"MAILER"` // smtp or console
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUsername  string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SMTPFromEmail string `mapstructure:"SMTP_FROM_EMAIL"`
	SMTPFromName  string `mapstructure:"SMTP_FROM_NAME"`

	// Object storage configuration
	AWSRegion           string `mapstructure:"AWS_REGION"`
	AWSBucketName       string `mapstructure:"AWS_BUCKET_NAME"`
	AWSAccessKeyID      string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey  string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSS3Endpoint       string `mapstructure:"AWS_S3_ENDPOINT"`
	SignedURLTTLMinutes int    `mapstructure:"SIGNED_URL_TTL_MINUTES"`
	MaxUploadMB         int    `mapstructure:"MAX_UPLOAD_MB"`

	// Rate limiting for unauthenticated endpoints
	RateLimitPublicPerMinute int `mapstructure:"RATE_LIMIT_PUBLIC_PER_MINUTE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as a comma separated string from the environment
	if len(config.AllowedOrigins) == 1 && strings.Contains(config.AllowedOrigins[0], ",") {
		config.AllowedOrigins = splitAndTrim(config.AllowedOrigins[0])
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "legal_workspace")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_HOURS", 24)

	// Credential and seat defaults
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("DEFAULT_SEAT_LIMIT", 5)
	viper.SetDefault("INVITE_TTL_HOURS", 24)
	viper.SetDefault("PASSWORD_RESET_TTL_MINUTES", 15)
	viper.SetDefault("STRICT_SEAT_LIMIT", true)

	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})

	// Mail defaults
	viper.SetDefault("MAILER", "console")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM_EMAIL", "no-reply@localhost")
	viper.SetDefault("SMTP_FROM_NAME", "Legal Workspace")

	// Object storage defaults
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_BUCKET_NAME", "")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("AWS_S3_ENDPOINT", "")
	viper.SetDefault("SIGNED_URL_TTL_MINUTES", 60)
	viper.SetDefault("MAX_UPLOAD_MB", 25)

	viper.SetDefault("RATE_LIMIT_PUBLIC_PER_MINUTE", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if config.BcryptCost < 4 || config.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", config.BcryptCost)
	}

	if config.DefaultSeatLimit < 1 {
		return fmt.Errorf("DEFAULT_SEAT_LIMIT must be positive")
	}

	if config.InviteTTLHours < 1 || config.PasswordResetTTLMinutes < 1 {
		return fmt.Errorf("token lifetimes must be positive")
	}

	switch config.Mailer {
	case "console":
	case "smtp":
		if config.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAILER=smtp")
		}
	default:
		return fmt.Errorf("unknown MAILER %q", config.Mailer)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// JWTTTL returns the lifetime of identity tokens
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// InviteTTL returns the lifetime of invite tokens
func (c *Config) InviteTTL() time.Duration {
	return time.Duration(c.InviteTTLHours) * time.Hour
}

// PasswordResetTTL returns the lifetime of password reset tokens
func (c *Config) PasswordResetTTL() time.Duration {
	return time.Duration(c.PasswordResetTTLMinutes) * time.Minute
}

// SignedURLTTL returns the lifetime of presigned object URLs
func (c *Config) SignedURLTTL() time.Duration {
	return time.Duration(c.SignedURLTTLMinutes) * time.Minute
}

// MaxUploadBytes returns the upload size cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// StorageEnabled reports whether an object storage bucket is configured
func (c *Config) StorageEnabled() bool {
	return c.AWSBucketName != ""
}
