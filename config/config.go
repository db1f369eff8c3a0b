package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MAGROULETTE_LOOP_DELAY
const EnvPrefix = "MAGROULETTE"

// Load loads the configuration. An explicit path must exist; without one,
// the standard locations are searched and a missing file is not an error.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".magroulette"))
		}

		v.AddConfigPath("/etc/magroulette/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.base_url", "https://archive.org/advancedsearch.php")
	v.SetDefault("search.details_url", "https://archive.org/details/")
	v.SetDefault("search.timeout", "30s")
	v.SetDefault("search.rate_limit", "1s")
	v.SetDefault("search.user_agent", "magroulette (+https://github.com/s0up4200/magroulette)")
	v.SetDefault("search.max_results", 100)
	v.SetDefault("search.random_page", true)

	// Loop defaults
	v.SetDefault("loop.delay", "30s")

	// Output defaults
	v.SetDefault("browser.enabled", true)
	v.SetDefault("display.max_values", 5)
	v.SetDefault("display.show_description", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if cfg.Search.BaseURL == "" {
		return fmt.Errorf("search.base_url is required")
	}

	if cfg.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be at least 1, got %d", cfg.Search.MaxResults)
	}

	if cfg.Search.RateLimit < 0 {
		return fmt.Errorf("search.rate_limit must not be negative")
	}

	if cfg.Loop.Delay < 0 {
		return fmt.Errorf("loop.delay must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
