package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	envFiles   []string
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithEnvFiles sets the dotenv files read before the environment. The default
// is ".env" in the working directory.
func (l *Loader) WithEnvFiles(files ...string) *Loader {
	l.envFiles = files
	return l
}

// WithConfigFile sets an explicit TOML file, which must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Read .env files into the process environment (existing variables win)
// 3. Override with the TOML config file
// 4. Override with MYDAY_* environment variables
// 5. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	// Step 2: missing .env files are normal
	_ = godotenv.Load(l.envFiles...)

	// Step 3: config file
	path, required := l.resolveConfigFile()
	if err := loadConfigFile(l.config, path, required); err != nil {
		return nil, err
	}

	// Step 4: environment
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveConfigFile picks the TOML file to read. An explicit path, from the
// loader or MYDAY_CONFIG, must exist; the default location is optional.
func (l *Loader) resolveConfigFile() (string, bool) {
	if l.configFile != "" {
		return l.configFile, true
	}
	if path := os.Getenv("MYDAY_CONFIG"); path != "" {
		return path, true
	}
	return filepath.Join(DefaultDir(), "config.toml"), false
}

// loadConfigFile decodes TOML config from path on top of cfg
func loadConfigFile(cfg *Config, path string, required bool) error {
	_, err := toml.DecodeFile(path, cfg)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &ConfigError{Field: "config_file", Message: fmt.Sprintf("cannot read %s: %v", path, err)}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend      *string
	StorageDir   *string
	Filename     *string
	OnCorrupt    *string
	QueryTimeout *time.Duration

	// Display overrides
	DefaultView *string
	Color       *bool

	// Logging overrides
	LogLevel  *string
	LogFormat *string

	// Application overrides
	Timeout   *time.Duration
	AssumeYes *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Storage overrides
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.Filename != nil {
		config.Storage.Filename = *overrides.Filename
	}
	if overrides.OnCorrupt != nil {
		config.Storage.OnCorrupt = *overrides.OnCorrupt
	}
	if overrides.QueryTimeout != nil {
		config.Storage.QueryTimeout = *overrides.QueryTimeout
	}

	// Display overrides
	if overrides.DefaultView != nil {
		config.Display.DefaultView = *overrides.DefaultView
	}
	if overrides.Color != nil {
		config.Display.Color = *overrides.Color
	}

	// Logging overrides
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.AssumeYes != nil {
		config.Application.AssumeYes = *overrides.AssumeYes
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
