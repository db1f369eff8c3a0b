package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Search  SearchConfig      `mapstructure:"search"`
	Loop    LoopConfig        `mapstructure:"loop"`
	Browser BrowserConfig     `mapstructure:"browser"`
	Display DisplayConfig     `mapstructure:"display"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Filters map[string]string `mapstructure:"filters"`
}

// SearchConfig holds the Internet Archive search settings
type SearchConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	DetailsURL string        `mapstructure:"details_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  time.Duration `mapstructure:"rate_limit"`
	UserAgent  string        `mapstructure:"user_agent"`
	MaxResults int           `mapstructure:"max_results"`
	RandomPage bool          `mapstructure:"random_page"`
}

// LoopConfig contains continuous mode settings
type LoopConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// BrowserConfig controls whether selected items are opened
type BrowserConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DisplayConfig contains console output settings
type DisplayConfig struct {
	MaxValues       int  `mapstructure:"max_values"`
	ShowDescription bool `mapstructure:"show_description"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
