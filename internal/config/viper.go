// Package config provides Viper-based hierarchical configuration management
// for the statement extraction tool.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		// MaxTransactions caps the transaction sample collected per statement.
		MaxTransactions int `mapstructure:"max_transactions" yaml:"max_transactions"`
		// PatternsFile optionally overrides the built-in pattern table.
		PatternsFile string `mapstructure:"patterns_file" yaml:"patterns_file"`
		// NormalizeDates applies date normalization as a post-processing step.
		NormalizeDates bool `mapstructure:"normalize_dates" yaml:"normalize_dates"`
	} `mapstructure:"parser" yaml:"parser"`

	PDF struct {
		// MaxFileSizeMB rejects statement files larger than this before parsing.
		MaxFileSizeMB int64 `mapstructure:"max_file_size_mb" yaml:"max_file_size_mb"`
		// PdftotextFallback enables the external pdftotext command when the
		// Go PDF library cannot produce readable text.
		PdftotextFallback bool `mapstructure:"pdftotext_fallback" yaml:"pdftotext_fallback"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Export struct {
		Pretty       bool   `mapstructure:"pretty" yaml:"pretty"`
		CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then CARDSTMT_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cardstmt")
	v.AddConfigPath(".cardstmt")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CARDSTMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
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

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parser.max_transactions", 10)
	v.SetDefault("parser.patterns_file", "")
	v.SetDefault("parser.normalize_dates", false)

	v.SetDefault("pdf.max_file_size_mb", 10)
	v.SetDefault("pdf.pdftotext_fallback", true)

	v.SetDefault("export.pretty", true)
	v.SetDefault("export.csv_delimiter", ",")
}

// validateConfig checks configuration values for consistency.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format '%s', must be 'text' or 'json'", config.Log.Format)
	}

	if config.Parser.MaxTransactions <= 0 {
		return fmt.Errorf("parser.max_transactions must be positive, got %d", config.Parser.MaxTransactions)
	}

	if config.PDF.MaxFileSizeMB <= 0 {
		return fmt.Errorf("pdf.max_file_size_mb must be positive, got %d", config.PDF.MaxFileSizeMB)
	}

	if len(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("export.csv_delimiter must be a single character, got '%s'", config.Export.CSVDelimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config values.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if config.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
