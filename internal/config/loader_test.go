package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at an empty directory and clears MYDAY_* variables so
// the developer's own configuration never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"MYDAY_CONFIG", "MYDAY_STORAGE_BACKEND", "MYDAY_STORAGE_DIR", "MYDAY_STORAGE_FILENAME",
		"MYDAY_STORAGE_KEY", "MYDAY_STORAGE_ON_CORRUPT", "MYDAY_STORAGE_DIR_PERMISSIONS",
		"MYDAY_STORAGE_QUERY_TIMEOUT", "MYDAY_DISPLAY_DEFAULT_VIEW", "MYDAY_DISPLAY_OUTPUT_FORMAT",
		"MYDAY_DISPLAY_COLOR", "MYDAY_VALIDATION_TASK_NAME_MAX", "MYDAY_LOG_LEVEL", "MYDAY_LOG_FORMAT",
		"MYDAY_APP_TIMEOUT", "MYDAY_APP_ASSUME_YES", "NO_COLOR",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendSQLite)
	}
	if want := filepath.Join(home, ".myday", "myday.db"); cfg.GetDatabasePath() != want {
		t.Errorf("GetDatabasePath() = %q, want %q", cfg.GetDatabasePath(), want)
	}
	if cfg.Storage.Key != "myDayGenieTasks" {
		t.Errorf("Storage.Key = %q", cfg.Storage.Key)
	}
	if cfg.Display.DefaultView != ViewTime {
		t.Errorf("Display.DefaultView = %q", cfg.Display.DefaultView)
	}
	if !cfg.Display.Color {
		t.Error("Display.Color should default to true")
	}
}

func TestLoader_ConfigFileFromDefaultLocation(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".myday", "config.toml"), `
[storage]
filename = "planner.db"
on_corrupt = "reset"
query_timeout = "3s"

[display]
default_view = "category"
color = false

[validation]
task_name_max_length = 40
`)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.Filename != "planner.db" {
		t.Errorf("Storage.Filename = %q", cfg.Storage.Filename)
	}
	if cfg.Storage.OnCorrupt != "reset" {
		t.Errorf("Storage.OnCorrupt = %q", cfg.Storage.OnCorrupt)
	}
	if cfg.Storage.QueryTimeout != 3*time.Second {
		t.Errorf("Storage.QueryTimeout = %v", cfg.Storage.QueryTimeout)
	}
	if cfg.Display.DefaultView != ViewCategory {
		t.Errorf("Display.DefaultView = %q", cfg.Display.DefaultView)
	}
	if cfg.Display.Color {
		t.Error("Display.Color should be false from file")
	}
	if cfg.Validation.TaskNameMaxLength != 40 {
		t.Errorf("Validation.TaskNameMaxLength = %d", cfg.Validation.TaskNameMaxLength)
	}
	// untouched values keep their defaults
	if cfg.Storage.Key != "myDayGenieTasks" {
		t.Errorf("Storage.Key = %q", cfg.Storage.Key)
	}
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "custom.toml"), `
[display]
default_view = "category"

[logging]
level = "info"
`)
	t.Setenv("MYDAY_CONFIG", path)
	t.Setenv("MYDAY_DISPLAY_DEFAULT_VIEW", "time")
	t.Setenv("MYDAY_APP_TIMEOUT", "5s")
	t.Setenv("MYDAY_STORAGE_DIR_PERMISSIONS", "700")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.DefaultView != ViewTime {
		t.Errorf("Display.DefaultView = %q, want env value", cfg.Display.DefaultView)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want file value", cfg.Logging.Level)
	}
	if cfg.Application.Timeout != 5*time.Second {
		t.Errorf("Application.Timeout = %v", cfg.Application.Timeout)
	}
	if cfg.Storage.DirPermissions != 0700 {
		t.Errorf("Storage.DirPermissions = %o", cfg.Storage.DirPermissions)
	}
}

func TestLoader_InvalidEnvValuesAreIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("MYDAY_APP_TIMEOUT", "soon")
	t.Setenv("MYDAY_VALIDATION_TASK_NAME_MAX", "lots")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Application.Timeout != 30*time.Second {
		t.Errorf("Application.Timeout = %v, want default", cfg.Application.Timeout)
	}
	if cfg.Validation.TaskNameMaxLength != 200 {
		t.Errorf("Validation.TaskNameMaxLength = %d, want default", cfg.Validation.TaskNameMaxLength)
	}
}

func TestLoader_NoColor(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoader_DotEnv(t *testing.T) {
	isolate(t)
	envFile := writeFile(t, filepath.Join(t.TempDir(), ".env"), "MYDAY_STORAGE_KEY=fromDotEnv\nMYDAY_LOG_LEVEL=debug\n")
	t.Setenv("MYDAY_LOG_LEVEL", "error")

	cfg, err := NewLoader().WithEnvFiles(envFile).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.Key != "fromDotEnv" {
		t.Errorf("Storage.Key = %q, want value from .env", cfg.Storage.Key)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, existing environment should win over .env", cfg.Logging.Level)
	}
}

func TestLoader_MissingExplicitConfigFile(t *testing.T) {
	isolate(t)

	_, err := NewLoader().WithConfigFile(filepath.Join(t.TempDir(), "absent.toml")).Load()

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "config_file" {
		t.Fatalf("Load() error = %v, want config_file ConfigError", err)
	}
}

func TestLoader_MalformedConfigFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.toml"), "[storage\nkey = ")

	if _, err := NewLoader().WithConfigFile(path).Load(); err == nil {
		t.Fatal("Load() expected error for malformed TOML")
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	isolate(t)
	backend := BackendMemory
	view := ViewCategory
	yes := true
	timeout := 2 * time.Second

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Backend:     &backend,
		DefaultView: &view,
		AssumeYes:   &yes,
		Timeout:     &timeout,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Storage.Backend != BackendMemory || cfg.Display.DefaultView != ViewCategory || !cfg.Application.AssumeYes || cfg.Application.Timeout != timeout {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoader_OverridesAreValidated(t *testing.T) {
	isolate(t)
	view := "calendar"

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{DefaultView: &view})

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "display.default_view" {
		t.Fatalf("LoadWithOverrides() error = %v, want display.default_view ConfigError", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"memory ignores dir", func(c *Config) { c.Storage.Backend = BackendMemory; c.Storage.Dir = "" }, ""},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, "storage.key"},
		{"bad corrupt policy", func(c *Config) { c.Storage.OnCorrupt = "ignore" }, "storage.on_corrupt"},
		{"zero query timeout", func(c *Config) { c.Storage.QueryTimeout = 0 }, "storage.query_timeout"},
		{"bad view", func(c *Config) { c.Display.DefaultView = "list" }, "display.default_view"},
		{"bad output format", func(c *Config) { c.Display.OutputFormat = "xml" }, "display.output_format"},
		{"zero name length", func(c *Config) { c.Validation.TaskNameMaxLength = 0 }, "validation.task_name_max_length"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}
