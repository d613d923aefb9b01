package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	API      APIConfig
	Session  SessionConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// APIConfig holds companion backend settings.
type APIConfig struct {
	BaseURL   string
	TimeoutMS int
}

// SessionConfig holds local session settings. Secret signs the
// persisted session token; it is generated on first run.
type SessionConfig struct {
	Secret string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat      string
	ToastDurationMS int
}

// Load reads configuration from file and env. Env var overrides use prefix STRIDE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "stride", "stride.db"))
	v.SetDefault("api.base_url", "https://api.stride.app")
	v.SetDefault("api.timeout_ms", 5000)
	v.SetDefault("session.secret", "")
	v.SetDefault("ui.date_format", "Mon 02 Jan")
	v.SetDefault("ui.toast_duration_ms", 3000)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STRIDE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "stride"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STRIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used on first run to persist the generated session secret and by the
// settings flow for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("STRIDE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "stride", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout_ms", cfg.API.TimeoutMS)
	v.Set("session.secret", cfg.Session.Secret)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.toast_duration_ms", cfg.UI.ToastDurationMS)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
