package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a temp directory so no config file is picked up
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 10, config.Parser.MaxTransactions)
	assert.Equal(t, "", config.Parser.PatternsFile)
	assert.False(t, config.Parser.NormalizeDates)
	assert.Equal(t, int64(10), config.PDF.MaxFileSizeMB)
	assert.True(t, config.PDF.PdftotextFallback)
	assert.True(t, config.Export.Pretty)
	assert.Equal(t, ",", config.Export.CSVDelimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CARDSTMT_LOG_LEVEL", "debug")
	t.Setenv("CARDSTMT_PARSER_MAX_TRANSACTIONS", "25")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 25, config.Parser.MaxTransactions)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"zero transaction cap", func(c *Config) { c.Parser.MaxTransactions = 0 }, true},
		{"negative file size", func(c *Config) { c.PDF.MaxFileSizeMB = -1 }, true},
		{"multi-char delimiter", func(c *Config) { c.Export.CSVDelimiter = ";;" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := &Config{}
			config.Log.Level = "info"
			config.Log.Format = "text"
			config.Parser.MaxTransactions = 10
			config.PDF.MaxFileSizeMB = 10
			config.Export.CSVDelimiter = ","

			tc.mutate(config)

			err := validateConfig(config)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := &Config{}
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CARDSTMT_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("CARDSTMT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CARDSTMT_MISSING_KEY", "fallback"))
}
