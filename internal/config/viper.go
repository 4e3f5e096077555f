// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model           string  `mapstructure:"model" yaml:"model"`
		TimeoutSeconds  int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxOutputTokens int     `mapstructure:"max_output_tokens" yaml:"max_output_tokens"`
		Temperature     float64 `mapstructure:"temperature" yaml:"temperature"`
		APIKey          string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Cache struct {
		ExpiryMinutes int    `mapstructure:"expiry_minutes" yaml:"expiry_minutes"`
		MaxEntries    int    `mapstructure:"max_entries" yaml:"max_entries"`
		RedisAddr     string `mapstructure:"redis_addr" yaml:"redis_addr"`
	} `mapstructure:"cache" yaml:"cache"`

	Data struct {
		CardsFile   string `mapstructure:"cards_file" yaml:"cards_file"`
		HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
	} `mapstructure:"data" yaml:"data"`
}

// AIEnabled reports whether the AI backend can be used. There is no separate
// toggle: presence of a Gemini API key is the switch. Without a key the
// advisor runs permanently on the deterministic fallback.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.AI.APIKey) != ""
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.credit-scorecerer")
	v.AddConfigPath(".credit-scorecerer")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SCORECERER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key is always taken from the conventional unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// AI defaults
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 10)
	v.SetDefault("ai.max_output_tokens", 1000)
	v.SetDefault("ai.temperature", 0.3)

	// Cache defaults
	v.SetDefault("cache.expiry_minutes", 5)
	v.SetDefault("cache.max_entries", 50)
	v.SetDefault("cache.redis_addr", "")

	// Data defaults
	v.SetDefault("data.cards_file", "cards.yaml")
	v.SetDefault("data.history_file", "history.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	if config.AI.MaxOutputTokens < 1 {
		return fmt.Errorf("ai.max_output_tokens must be positive, got: %d", config.AI.MaxOutputTokens)
	}

	if config.AI.Temperature < 0.0 || config.AI.Temperature > 2.0 {
		return fmt.Errorf("ai.temperature must be between 0.0 and 2.0, got: %f", config.AI.Temperature)
	}

	if config.Cache.ExpiryMinutes < 1 {
		return fmt.Errorf("cache.expiry_minutes must be positive, got: %d", config.Cache.ExpiryMinutes)
	}

	if config.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive, got: %d", config.Cache.MaxEntries)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
