package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/takak2166/feishudocs/internal/logger"
)

func main() {
	// Load .env file; running without one is fine
	_ = godotenv.Load()

	// Initialize logger
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	if err := logger.Init(logLevel); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
