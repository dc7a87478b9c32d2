package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied before file and environment values.
const (
	DefaultBaseURL        = "https://api.chucknorris.io"
	DefaultTimeoutSeconds = 10
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Environment variables recognized in addition to the automatic CHUCK_*
// bindings.
const (
	// EnvTimeout overrides the request timeout in whole seconds. The name
	// does not follow the CHUCK_<section>_<key> scheme, so it is bound
	// explicitly.
	EnvTimeout = "CHUCK_CLI_TIMEOUT"
	// EnvConfig points at an explicit config file.
	EnvConfig = "CHUCK_CONFIG"
)

// Config holds the complete CLI configuration.
type Config struct {
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds jokes API connection configuration.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LogConfig holds diagnostic logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration once at process start: built-in defaults, then an
// optional config file, then CHUCK_* environment variables. Flags are layered
// on top by the command layer.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CHUCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.timeout_seconds", EnvTimeout); err != nil {
		return nil, fmt.Errorf("bind %s: %w", EnvTimeout, err)
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// readConfigFile loads CHUCK_CONFIG when set, otherwise searches the default
// locations. A missing file is fine; an unreadable or malformed one is not.
func readConfigFile(v *viper.Viper) error {
	if path := os.Getenv(EnvConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "chuck"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must start with http:// or https://, got: %s", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds < 1 {
		return errors.New("api.timeout_seconds must be at least 1")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got: %s", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got: %s", c.Log.Format)
	}
	return nil
}
