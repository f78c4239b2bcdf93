package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string

	// Storage configuration
	DataDir    string
	InMemory   bool
	SyncWrites bool

	// Logging
	LogLevel string

	// SimulatedLatencyMs overrides the default simulated network delay
	// applied to login, register and question submission. -1 keeps the
	// domain default.
	SimulatedLatencyMs int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		DataDir:            getEnv("DATA_DIR", "data"),
		InMemory:           getEnvBool("IN_MEMORY", false),
		SyncWrites:         getEnvBool("SYNC_WRITES", false),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SimulatedLatencyMs: getEnvInt("SIMULATED_LATENCY_MS", -1),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if !c.InMemory && c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required when IN_MEMORY is disabled")
	}
	return nil
}

// SimulatedLatency returns the override as a duration, or false when the
// domain default should apply.
func (c *Config) SimulatedLatency() (time.Duration, bool) {
	if c.SimulatedLatencyMs < 0 {
		return 0, false
	}
	return time.Duration(c.SimulatedLatencyMs) * time.Millisecond, true
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
