// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig contains host-level settings sourced from CARRIER_*
// environment variables. These cover concerns the JSON configuration does
// not: resource limits and shutdown behavior for the host process.
type EnvironmentConfig struct {
	TickRate   int
	HealthAddr string

	// Resource management configuration
	MaxMemoryMB           int64
	MaxGoroutines         int
	ShutdownTimeout       time.Duration
	ResourceCheckInterval time.Duration
}

// LoadConfigFromEnv builds an EnvironmentConfig from the process
// environment, falling back to safe defaults for unset variables.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		TickRate:              60,
		HealthAddr:            ":8080",
		MaxMemoryMB:           500,
		MaxGoroutines:         100,
		ShutdownTimeout:       30 * time.Second,
		ResourceCheckInterval: 10 * time.Second,
	}

	if v := os.Getenv("CARRIER_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CARRIER_TICK_RATE %q: %w", v, err)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("CARRIER_TICK_RATE must be positive, got %d", rate)
		}
		config.TickRate = rate
	}

	if v := os.Getenv("CARRIER_HEALTH_ADDR"); v != "" {
		config.HealthAddr = v
	}

	if v := os.Getenv("CARRIER_MAX_MEMORY_MB"); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CARRIER_MAX_MEMORY_MB %q: %w", v, err)
		}
		if mb <= 0 {
			return nil, fmt.Errorf("CARRIER_MAX_MEMORY_MB must be positive, got %d", mb)
		}
		config.MaxMemoryMB = mb
	}

	if v := os.Getenv("CARRIER_MAX_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CARRIER_MAX_GOROUTINES %q: %w", v, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("CARRIER_MAX_GOROUTINES must be positive, got %d", n)
		}
		config.MaxGoroutines = n
	}

	if v := os.Getenv("CARRIER_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CARRIER_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("CARRIER_SHUTDOWN_TIMEOUT must be positive, got %v", d)
		}
		config.ShutdownTimeout = d
	}

	if v := os.Getenv("CARRIER_RESOURCE_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CARRIER_RESOURCE_CHECK_INTERVAL %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("CARRIER_RESOURCE_CHECK_INTERVAL must be positive, got %v", d)
		}
		config.ResourceCheckInterval = d
	}

	return config, nil
}

// ApplyEnvironmentOverrides applies environment settings on top of a loaded
// simulation configuration. Environment variables win over the JSON file so
// deployments can tune a shared config without editing it.
func ApplyEnvironmentOverrides(config *SimConfig) error {
	envConfig, err := LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if os.Getenv("CARRIER_TICK_RATE") != "" {
		config.TickRate = envConfig.TickRate
	}
	if os.Getenv("CARRIER_HEALTH_ADDR") != "" {
		config.HealthConfig.Addr = envConfig.HealthAddr
	}

	return nil
}
