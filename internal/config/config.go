package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Remote WordPress site
	WordPress WordPressConfig

	// Tool transport settings
	Server ServerConfig

	// Logging configuration
	Log LogConfig

	// Error reporting
	Sentry SentryConfig
}

// WordPressConfig holds the REST endpoint and basic-auth credentials
type WordPressConfig struct {
	URL      string `env:"WP_URL" validate:"required,url"`
	Username string `env:"WP_USERNAME" validate:"required"`
	Password string `env:"WP_PASSWORD" validate:"required"`

	// Zero means no client-side timeout
	Timeout time.Duration `env:"WP_HTTP_TIMEOUT" validate:"gte=0"`
}

// ServerConfig holds tool transport settings
type ServerConfig struct {
	Transport       string // "stdio" or "http"
	Port            string
	ShutdownTimeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// SentryConfig enables failure reporting when DSN is set
type SentryConfig struct {
	DSN         string
	Environment string
}

// ConfigurationError lists the environment variables that are missing or invalid
type ConfigurationError struct {
	Vars []string
}

func (e *ConfigurationError) Error() string {
	return "missing or invalid configuration: " + strings.Join(e.Vars, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report env var names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})

	return v
}

// Load reads configuration from environment variables, after merging an
// optional .env file. A *ConfigurationError is returned together with the
// config so the caller can keep serving with tools disabled.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	cfg := &Config{
		WordPress: WordPressConfig{
			URL:      getEnv("WP_URL", ""),
			Username: getEnv("WP_USERNAME", ""),
			Password: getEnv("WP_PASSWORD", ""),
			Timeout:  getDurationEnv("WP_HTTP_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Transport:       getEnv("MCP_TRANSPORT", "stdio"),
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks the WordPress settings every tool depends on
func (c *Config) Validate() error {
	err := validate.Struct(c.WordPress)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	cfgErr := &ConfigurationError{}
	for _, fe := range fieldErrs {
		cfgErr.Vars = append(cfgErr.Vars, fe.Field())
	}
	return cfgErr
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
