// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-carrier/pkg/entity"
)

// SimConfig contains configuration for a carrier simulation
type SimConfig struct {
	RosterSize     int            `json:"rosterSize"`
	TickRate       int            `json:"tickRate"` // Simulation frames per second
	ShipConfig     ShipConfig     `json:"ship"`
	AircraftConfig AircraftConfig `json:"aircraft"`
	DisplayConfig  DisplayConfig  `json:"display"`
	HealthConfig   HealthConfig   `json:"health"`
}

// ShipConfig contains configuration for the carrier
type ShipConfig struct {
	LinearSpeed  float64 `json:"linearSpeed"`
	AngularSpeed float64 `json:"angularSpeed"`
}

// AircraftConfig contains configuration for the aircraft roster
type AircraftConfig struct {
	MaxSpeed          float64 `json:"maxSpeed"`
	Acceleration      float64 `json:"acceleration"`
	HoverAngularSpeed float64 `json:"hoverAngularSpeed"`
	TakeoffDuration   float64 `json:"takeoffDuration"`
	FlightDuration    float64 `json:"flightDuration"`
	RefuelDuration    float64 `json:"refuelDuration"`
	HoverRadius       float64 `json:"hoverRadius"`
	LandingRadius     float64 `json:"landingRadius"`
}

// DisplayConfig contains rendering-related configuration
type DisplayConfig struct {
	Renderer string  `json:"renderer"` // "null", "terminal", or "engo"
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Scale    float64 `json:"scale"` // World units per screen unit
}

// HealthConfig contains health endpoint configuration
type HealthConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// ShipParams converts the ship section to entity parameters
func (c ShipConfig) ShipParams() entity.ShipParams {
	return entity.ShipParams{
		LinearSpeed:  c.LinearSpeed,
		AngularSpeed: c.AngularSpeed,
	}
}

// AircraftParams converts the aircraft section to entity parameters
func (c AircraftConfig) AircraftParams() entity.AircraftParams {
	return entity.AircraftParams{
		MaxSpeed:          c.MaxSpeed,
		Acceleration:      c.Acceleration,
		HoverAngularSpeed: c.HoverAngularSpeed,
		TakeoffDuration:   c.TakeoffDuration,
		FlightDuration:    c.FlightDuration,
		RefuelDuration:    c.RefuelDuration,
		HoverRadius:       c.HoverRadius,
		LandingRadius:     c.LandingRadius,
	}
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c *SimConfig) Validate() error {
	if c.RosterSize <= 0 {
		return fmt.Errorf("roster size must be positive, got %d", c.RosterSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.ShipConfig.LinearSpeed <= 0 {
		return fmt.Errorf("ship linear speed must be positive, got %f", c.ShipConfig.LinearSpeed)
	}
	if c.AircraftConfig.MaxSpeed <= 0 {
		return fmt.Errorf("aircraft max speed must be positive, got %f", c.AircraftConfig.MaxSpeed)
	}
	if c.AircraftConfig.Acceleration <= 0 {
		return fmt.Errorf("aircraft acceleration must be positive, got %f", c.AircraftConfig.Acceleration)
	}
	if c.AircraftConfig.HoverRadius <= 0 {
		return fmt.Errorf("hover radius must be positive, got %f", c.AircraftConfig.HoverRadius)
	}
	if c.AircraftConfig.LandingRadius <= 0 {
		return fmt.Errorf("landing radius must be positive, got %f", c.AircraftConfig.LandingRadius)
	}
	return nil
}

// DefaultConfig returns a default simulation configuration
func DefaultConfig() *SimConfig {
	return &SimConfig{
		RosterSize: 5,
		TickRate:   60,
		ShipConfig: ShipConfig{
			LinearSpeed:  0.5,
			AngularSpeed: 0.5,
		},
		AircraftConfig: AircraftConfig{
			MaxSpeed:          2.0,
			Acceleration:      1.0,
			HoverAngularSpeed: 2.5,
			TakeoffDuration:   2.0,
			FlightDuration:    10.0,
			RefuelDuration:    3.0,
			HoverRadius:       1.0,
			LandingRadius:     0.1,
		},
		DisplayConfig: DisplayConfig{
			Renderer: "terminal",
			Width:    80,
			Height:   24,
			Scale:    0.25,
		},
		HealthConfig: HealthConfig{
			Enabled: false,
			Addr:    ":8080",
		},
	}
}
