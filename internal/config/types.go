package config

// Config represents the main application configuration structure.
// It contains the HTTP server settings for the Empty-Check Service.
// The service keeps no state and talks to no external systems, so server
// settings are the whole configuration surface.
type Config struct {
	// Bind address (e.g., "0.0.0.0")
	Host string

	// HTTP server port (e.g., "8000")
	Port string

	// Application environment (e.g., "development", "production")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string
}

// ServerConfig represents server-related configuration settings.
// It contains HTTP server configuration including bind address, port,
// environment, and logging settings that can be overridden by
// command-line flags.
type ServerConfig struct {
	// Bind address (e.g., "0.0.0.0")
	Host string `yaml:"host"`

	// HTTP server port (e.g., "8000")
	Port string `yaml:"port"`

	// Application environment (e.g., "development", "production")
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`
}

// YAMLConfig represents the structure of the YAML configuration file.
// It defines the complete structure for configs/config.yaml and provides
// the root configuration object for the application.
type YAMLConfig struct {
	// Server configuration settings
	Server ServerConfig `yaml:"server"`
}
