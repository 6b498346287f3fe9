package main

import (
	"fmt"
	"os"

	"irspec/internal"
	"irspec/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := internal.NewLogger(appConfig.Log.Level)
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(appConfig, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
