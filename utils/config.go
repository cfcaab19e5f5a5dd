package utils

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Defaults for the size-limit policy. They are a demo limit, not a rule of the automaton.
const (
	DefaultMaxRows    = 6
	DefaultMaxColumns = 8
)

// Config holds the transition engine settings
type Config struct {
	EnforceMaxGridSize bool `json:"enforce_max_grid_size"`
	MaxRows            int  `json:"max_rows"`
	MaxColumns         int  `json:"max_columns"`
	Workers            int  `json:"workers"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		EnforceMaxGridSize: true,
		MaxRows:            DefaultMaxRows,
		MaxColumns:         DefaultMaxColumns,
		Workers:            runtime.NumCPU(),
	}
}

// WithoutSizeLimit returns a copy of the config that accepts grids of any size
func (c Config) WithoutSizeLimit() Config {
	c.EnforceMaxGridSize = false
	return c
}

// WorkerCount returns the number of row bands to compute in parallel, at least 1
func (c Config) WorkerCount() int {
	return max(1, c.Workers)
}

// Validate checks that the size bounds are usable while the policy is enabled
func (c Config) Validate() error {
	if !c.EnforceMaxGridSize {
		return nil
	}
	if c.MaxRows <= 0 || c.MaxColumns <= 0 {
		return errors.Errorf("[Validate] max grid size must be positive, got %dx%d", c.MaxRows, c.MaxColumns)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
