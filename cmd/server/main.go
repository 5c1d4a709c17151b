package main

import (
	"log"
	"os"

	"github.com/zinan-c/empty-checker/internal/config"
	"github.com/zinan-c/empty-checker/internal/server"
	"github.com/zinan-c/empty-checker/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the Empty-Check Service.
// It performs the following operations:
//  1. Parses command-line flags for server configuration
//  2. Loads environment variables from .env file if present
//  3. Loads configuration from the YAML file with flag overrides
//  4. Initializes the HTTP server with middleware and routes
//  5. Begins listening for HTTP requests
//
// The process never terminates due to a request-level failure; every error
// is scoped to its request and reported back to the caller.
func main() {
	flgs := parseFlags()

	if flgs.Help {
		flgs.showHelp()
		os.Exit(0)
	}
	if flgs.Version {
		flgs.showVersion()
		os.Exit(0)
	}
	if err := flgs.validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration from YAML and environment variables with flag overrides
	cfg := config.LoadWithFlags(flgs)

	// Create and start server
	srv := server.New(cfg)

	logger.Infof("Starting on %s:%s", cfg.Host, cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)

	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
