// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
	if cfg.RosterSize != 5 {
		t.Errorf("RosterSize = %d, expected 5", cfg.RosterSize)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.AircraftConfig.MaxSpeed != 2.0 {
		t.Errorf("aircraft MaxSpeed = %v, expected 2.0", cfg.AircraftConfig.MaxSpeed)
	}
	if cfg.ShipConfig.LinearSpeed != 0.5 {
		t.Errorf("ship LinearSpeed = %v, expected 0.5", cfg.ShipConfig.LinearSpeed)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SimConfig)
		wantErr bool
	}{
		{
			name:    "valid_default",
			modify:  func(c *SimConfig) {},
			wantErr: false,
		},
		{
			name:    "zero_roster",
			modify:  func(c *SimConfig) { c.RosterSize = 0 },
			wantErr: true,
		},
		{
			name:    "negative_tick_rate",
			modify:  func(c *SimConfig) { c.TickRate = -1 },
			wantErr: true,
		},
		{
			name:    "zero_ship_speed",
			modify:  func(c *SimConfig) { c.ShipConfig.LinearSpeed = 0 },
			wantErr: true,
		},
		{
			name:    "zero_aircraft_max_speed",
			modify:  func(c *SimConfig) { c.AircraftConfig.MaxSpeed = 0 },
			wantErr: true,
		},
		{
			name:    "zero_acceleration",
			modify:  func(c *SimConfig) { c.AircraftConfig.Acceleration = 0 },
			wantErr: true,
		},
		{
			name:    "zero_hover_radius",
			modify:  func(c *SimConfig) { c.AircraftConfig.HoverRadius = 0 },
			wantErr: true,
		},
		{
			name:    "zero_landing_radius",
			modify:  func(c *SimConfig) { c.AircraftConfig.LandingRadius = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := DefaultConfig()
	original.RosterSize = 7
	original.DisplayConfig.Renderer = "null"

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if loaded.RosterSize != 7 {
		t.Errorf("RosterSize = %d, expected 7", loaded.RosterSize)
	}
	if loaded.DisplayConfig.Renderer != "null" {
		t.Errorf("Renderer = %q, expected null", loaded.DisplayConfig.Renderer)
	}
	if loaded.AircraftConfig != original.AircraftConfig {
		t.Errorf("aircraft config = %+v, expected %+v", loaded.AircraftConfig, original.AircraftConfig)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadConfig() of missing file succeeded, expected error")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of invalid JSON succeeded, expected error")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.RosterSize = -3
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of invalid configuration succeeded, expected error")
	}
}

func TestShipParams_Conversion(t *testing.T) {
	cfg := ShipConfig{LinearSpeed: 1.5, AngularSpeed: 0.7}
	params := cfg.ShipParams()

	if params.LinearSpeed != 1.5 || params.AngularSpeed != 0.7 {
		t.Errorf("ShipParams() = %+v, expected values from config", params)
	}
}

func TestAircraftParams_Conversion(t *testing.T) {
	cfg := DefaultConfig().AircraftConfig
	params := cfg.AircraftParams()

	if params.MaxSpeed != cfg.MaxSpeed {
		t.Errorf("MaxSpeed = %v, expected %v", params.MaxSpeed, cfg.MaxSpeed)
	}
	if params.FlightDuration != cfg.FlightDuration {
		t.Errorf("FlightDuration = %v, expected %v", params.FlightDuration, cfg.FlightDuration)
	}
	if params.RefuelDuration != cfg.RefuelDuration {
		t.Errorf("RefuelDuration = %v, expected %v", params.RefuelDuration, cfg.RefuelDuration)
	}
}
