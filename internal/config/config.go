// Package config loads the optional YAML configuration for the analyzer.
// Flags override config values; config values override the built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"qdrift-go/internal/model"
)

// App holds server and logging settings.
type App struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Simulation holds the default run parameters applied when flags are
// unset.
type Simulation struct {
	Simulations int     `yaml:"simulations"`
	Noise       float64 `yaml:"noise"`
}

// Config is the full analyzer configuration.
type Config struct {
	App        App        `yaml:"app"`
	Simulation Simulation `yaml:"simulation"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		App: App{
			Port:     8080,
			LogLevel: "info",
		},
		Simulation: Simulation{
			Simulations: model.DefaultSimulations,
			Noise:       model.DefaultNoise,
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields absent from the file
// keep their built-in defaults.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
