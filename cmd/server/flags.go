package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/zinan-c/empty-checker/internal/config"
	"github.com/zinan-c/empty-checker/internal/version"
)

// Default values for server configuration
const (
	DefaultHost        = config.DefaultHost
	DefaultPort        = config.DefaultPort
	DefaultEnvironment = config.DefaultEnvironment
	DefaultLogLevel    = config.DefaultLogLevel
)

// Valid values for validation
const (
	ValidEnvironmentDevelopment = config.ValidEnvironmentDevelopment
	ValidEnvironmentProduction  = config.ValidEnvironmentProduction

	ValidLogLevelDebug = config.ValidLogLevelDebug
	ValidLogLevelInfo  = config.ValidLogLevelInfo
	ValidLogLevelWarn  = config.ValidLogLevelWarn
	ValidLogLevelError = config.ValidLogLevelError
)

// Help and version text
const (
	AppName        = "Empty-Check Service"
	AppDescription = "An HTTP service that classifies arbitrary JSON values as empty or not"
)

// ServerFlags holds all command-line flags for the Empty-Check Service.
// It provides a structured way to parse and validate command-line arguments
// for server configuration.
type ServerFlags struct {
	// Server configuration flags
	// Bind address for the HTTP listener
	Host string
	// HTTP server port number
	Port string
	// Deployment environment (development/production)
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string

	// General flags
	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses command-line flags and returns a ServerFlags struct.
// This function sets up all available command-line options with their
// descriptions, then parses the command line arguments.
//
// Flags are registered with empty defaults: a flag left unset stays empty so
// the config loader falls through to environment variables, the YAML file,
// and finally the built-in defaults. Registering the defaults here would make
// every unset flag look like an explicit override and cut off the other
// configuration sources.
func parseFlags() *ServerFlags {
	f := &ServerFlags{}

	// Server configuration flags
	flag.StringVar(&f.Host, "host", "",
		fmt.Sprintf("Bind address (default: %s)", DefaultHost))
	flag.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", DefaultPort))
	flag.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment: %s, %s (default: %s)",
			ValidEnvironmentDevelopment, ValidEnvironmentProduction, DefaultEnvironment))
	flag.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (default: %s)",
			ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError, DefaultLogLevel))

	// General flags
	flag.BoolVar(&f.Help, "help", false, "Show help information and exit")
	flag.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	flag.BoolVar(&f.Version, "version", false, "Show version information and exit")
	flag.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	// Parse command-line arguments
	flag.Parse()

	return f
}

// showHelp displays help information for the Empty-Check Service,
// documenting all available command-line flags with usage examples.
func (f *ServerFlags) showHelp() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  empty-checker [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  Server Configuration:")
	fmt.Println("    -host string")
	fmt.Println("          Bind address (default: 0.0.0.0)")
	fmt.Println("    -port string")
	fmt.Println("          Server port (default: 8000)")
	fmt.Println("    -env string")
	fmt.Println("          Environment: development, production (default: development)")
	fmt.Println("    -log-level string")
	fmt.Println("          Log level: debug, info, warn, error (default: info)")
	fmt.Println()
	fmt.Println("  General:")
	fmt.Println("    -help, -h")
	fmt.Println("          Show this help information")
	fmt.Println("    -version, -v")
	fmt.Println("          Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start with default settings")
	fmt.Println("  empty-checker")
	fmt.Println()
	fmt.Println("  # Start in production mode on a custom port")
	fmt.Println("  empty-checker -env production -port 8080")
	fmt.Println()
	fmt.Println("  # Bind to localhost only")
	fmt.Println("  empty-checker -host 127.0.0.1")
}

// showVersion displays version information for the Empty-Check Service,
// including build metadata and the Go runtime version.
func (f *ServerFlags) showVersion() {
	fmt.Printf("%s %s\n", AppName, version.GetVersion())
	fmt.Printf("Build info: %s\n", version.GetBuildInfo())
	fmt.Printf("Go version: %s\n", runtime.Version())
}

// validate performs validation of all command-line flags.
// Empty values mean the flag was not set and the config loader picks the
// value from environment variables, the YAML file, or defaults; only values
// explicitly provided on the command line are checked here.
func (f *ServerFlags) validate() error {
	// Validate environment
	if f.Environment != "" {
		validEnvs := []string{ValidEnvironmentDevelopment, ValidEnvironmentProduction}
		validEnv := false
		for _, env := range validEnvs {
			if f.Environment == env {
				validEnv = true
				break
			}
		}
		if !validEnv {
			return fmt.Errorf("invalid environment: %s (must be one of: %s)", f.Environment, strings.Join(validEnvs, ", "))
		}
	}

	// Validate log level
	if f.LogLevel != "" {
		validLevels := []string{ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError}
		validLevel := false
		for _, level := range validLevels {
			if f.LogLevel == level {
				validLevel = true
				break
			}
		}
		if !validLevel {
			return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// Interface methods for config package
// These methods implement the config.Flags interface to allow the config
// package to access flag values without depending on the flag implementation.

// GetHost returns the configured bind address.
func (f *ServerFlags) GetHost() string {
	return f.Host
}

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}
