// Package config provides Viper-based hierarchical configuration management:
// defaults, then an optional config file, then SNAPENGINE_* environment
// variables, with a .env file loaded first for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"snapengine/internal/logging"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Catalog struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Classification struct {
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
		Workers             int     `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"classification" yaml:"classification"`

	Normalization struct {
		Lenient bool `mapstructure:"lenient" yaml:"lenient"`
	} `mapstructure:"normalization" yaml:"normalization"`
}

// LoadEnv loads a .env file once if one exists, so local runs can set
// SNAPENGINE_* variables without exporting them.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error loading %s: %v\n", envFile, err)
		}
	})
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	LoadEnv()

	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/snapengine")
	v.AddConfigPath(".snapengine")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SNAPENGINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("catalog.file", "")

	v.SetDefault("classification.confidence_threshold", 0.6)
	v.SetDefault("classification.workers", 0)

	v.SetDefault("normalization.lenient", false)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Classification.ConfidenceThreshold < 0.0 || config.Classification.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("classification.confidence_threshold must be between 0.0 and 1.0, got: %f", config.Classification.ConfidenceThreshold)
	}

	if config.Classification.Workers < 0 {
		return fmt.Errorf("classification.workers must not be negative, got: %d", config.Classification.Workers)
	}

	return nil
}

// NewLogger builds the application logger from the Log section.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
