package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rkapoor/cardstmt/cmd/batch"
	"rkapoor/cardstmt/cmd/issuers"
	"rkapoor/cardstmt/cmd/parse"
	"rkapoor/cardstmt/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before anything logs
	configureLogLevelDirectly()

	// 3. Initialize the root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(issuers.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level BEFORE any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
