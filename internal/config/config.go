package config

import (
	"os"
	"path/filepath"
	"time"

	"day-planner/internal/persistence"
)

// Config holds all configuration options for the planner
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Display     DisplayConfig     `toml:"display"`
	Validation  ValidationConfig  `toml:"validation"`
	Logging     LoggingConfig     `toml:"logging"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds key-value store configuration
type StorageConfig struct {
	Backend        string        `toml:"backend" env:"MYDAY_STORAGE_BACKEND"`
	Dir            string        `toml:"dir" env:"MYDAY_STORAGE_DIR"`
	Filename       string        `toml:"filename" env:"MYDAY_STORAGE_FILENAME"`
	Key            string        `toml:"key" env:"MYDAY_STORAGE_KEY"`
	OnCorrupt      string        `toml:"on_corrupt" env:"MYDAY_STORAGE_ON_CORRUPT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"MYDAY_STORAGE_DIR_PERMISSIONS"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"MYDAY_STORAGE_QUERY_TIMEOUT"`
}

// DisplayConfig holds rendering configuration
type DisplayConfig struct {
	DefaultView  string `toml:"default_view" env:"MYDAY_DISPLAY_DEFAULT_VIEW"`
	OutputFormat string `toml:"output_format" env:"MYDAY_DISPLAY_OUTPUT_FORMAT"`
	Color        bool   `toml:"color" env:"MYDAY_DISPLAY_COLOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMaxLength int `toml:"task_name_max_length" env:"MYDAY_VALIDATION_TASK_NAME_MAX"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `toml:"level" env:"MYDAY_LOG_LEVEL"`
	Format string `toml:"format" env:"MYDAY_LOG_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout   time.Duration `toml:"timeout" env:"MYDAY_APP_TIMEOUT"`
	AssumeYes bool          `toml:"assume_yes" env:"MYDAY_APP_ASSUME_YES"`
}

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	ViewTime     = "time"
	ViewCategory = "category"
)

// DefaultDir returns ~/.myday, falling back to a relative directory when the
// home directory is unknown.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".myday"
	}
	return filepath.Join(homeDir, ".myday")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            DefaultDir(),
			Filename:       "myday.db",
			Key:            persistence.DefaultKey,
			OnCorrupt:      string(persistence.CorruptFail),
			DirPermissions: 0755,
			QueryTimeout:   10 * time.Second,
		},
		Display: DisplayConfig{
			DefaultView:  ViewTime,
			OutputFormat: "csv",
			Color:        true,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: 200,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Application: ApplicationConfig{
			Timeout:   30 * time.Second,
			AssumeYes: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from MYDAY_* environment variables.
// Values that do not parse are ignored.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("MYDAY_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("MYDAY_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("MYDAY_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("MYDAY_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if policy := os.Getenv("MYDAY_STORAGE_ON_CORRUPT"); policy != "" {
		c.Storage.OnCorrupt = policy
	}
	if perms := os.Getenv("MYDAY_STORAGE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if timeout := os.Getenv("MYDAY_STORAGE_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}

	// Display configuration
	if view := os.Getenv("MYDAY_DISPLAY_DEFAULT_VIEW"); view != "" {
		c.Display.DefaultView = view
	}
	if format := os.Getenv("MYDAY_DISPLAY_OUTPUT_FORMAT"); format != "" {
		c.Display.OutputFormat = format
	}
	if color := os.Getenv("MYDAY_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		c.Display.Color = false
	}

	// Validation configuration
	if maxLen := os.Getenv("MYDAY_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		c.Validation.TaskNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.TaskNameMaxLength)
	}

	// Logging configuration
	if level := os.Getenv("MYDAY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("MYDAY_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	// Application configuration
	if timeout := os.Getenv("MYDAY_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if yes := os.Getenv("MYDAY_APP_ASSUME_YES"); yes != "" {
		c.Application.AssumeYes = ParseBoolWithFallback(yes, c.Application.AssumeYes)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
		}
	case BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be 'sqlite' or 'memory'"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if !persistence.CorruptPolicy(c.Storage.OnCorrupt).IsValid() {
		return &ConfigError{Field: "storage.on_corrupt", Message: "on_corrupt must be 'fail' or 'reset'"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.DefaultView != ViewTime && c.Display.DefaultView != ViewCategory {
		return &ConfigError{Field: "display.default_view", Message: "default view must be 'time' or 'category'"}
	}
	if c.Display.OutputFormat != "csv" && c.Display.OutputFormat != "json" {
		return &ConfigError{Field: "display.output_format", Message: "output format must be 'csv' or 'json'"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMaxLength < 1 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be at least 1"}
	}

	// Validate logging configuration
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "level must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be one of text, json, logfmt"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
