// Package config loads simulation parameters from a YAML file. A missing
// file is not an error: the documented defaults are used so a bare
// checkout can run a simulation without any setup.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hotelops/simulator/internal/core/services"
)

// Load reads the simulation config at the given path. Keys absent from
// the file keep their default values.
func Load(path string) (services.SimulationConfig, error) {
	cfg := services.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file %s not found, using default simulation parameters", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
