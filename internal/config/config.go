// Package config loads and saves the application configuration from
// ~/.fitness/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	User    string        `json:"user"`
	Athlete AthleteConfig `json:"athlete"`
	Display DisplayConfig `json:"display"`
}

// AthleteConfig holds the TRIMP parameters for the configured user
type AthleteConfig struct {
	MinimumHeartRate float64 `json:"minimum_heart_rate"`
	MaximumHeartRate float64 `json:"maximum_heart_rate"`
	Gender           string  `json:"gender"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		User: "default",
		Athlete: AthleteConfig{
			MinimumHeartRate: 60,
			MaximumHeartRate: 190,
			Gender:           "M",
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
		},
	}
}

// Load reads the configuration from ~/.fitness/config.json, filling in
// defaults for missing values.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadPath(path)
}

// LoadPath reads the configuration from an explicit path.
func LoadPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.User == "" {
		cfg.User = defaults.User
	}
	if cfg.Athlete.MinimumHeartRate == 0 {
		cfg.Athlete.MinimumHeartRate = defaults.Athlete.MinimumHeartRate
	}
	if cfg.Athlete.MaximumHeartRate == 0 {
		cfg.Athlete.MaximumHeartRate = defaults.Athlete.MaximumHeartRate
	}
	if cfg.Athlete.Gender == "" {
		cfg.Athlete.Gender = defaults.Athlete.Gender
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.fitness/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SavePath(cfg, path)
}

// SavePath writes the configuration to an explicit path.
func SavePath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.Athlete.MinimumHeartRate < 1 {
		return fmt.Errorf("athlete.minimum_heart_rate (%v) must be at least 1", c.Athlete.MinimumHeartRate)
	}
	if c.Athlete.MaximumHeartRate <= c.Athlete.MinimumHeartRate {
		return fmt.Errorf("athlete.maximum_heart_rate (%v) must be greater than athlete.minimum_heart_rate (%v)",
			c.Athlete.MaximumHeartRate, c.Athlete.MinimumHeartRate)
	}
	if c.Athlete.Gender != "M" && c.Athlete.Gender != "F" {
		return fmt.Errorf("athlete.gender must be \"M\" or \"F\", got %q", c.Athlete.Gender)
	}
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "m" && c.Display.DistanceUnit != "miles" {
		return fmt.Errorf("display.distance_unit must be \"km\", \"m\" or \"miles\", got %q", c.Display.DistanceUnit)
	}
	return nil
}

// DataDir returns the path to the application data directory
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitness"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
