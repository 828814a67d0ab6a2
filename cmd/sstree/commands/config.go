package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the random workload shared by check, bench, and knn.
type Config struct {
	// Dims is the vector dimensionality of the generated records.
	Dims int `yaml:"dims"`
	// MaxEntries is the tree branching factor M.
	MaxEntries int `yaml:"max_entries"`
	// Points is the number of random records to insert.
	Points int `yaml:"points"`
	// Queries is the number of random queries to run per check/bench.
	Queries int `yaml:"queries"`
	// K is the number of neighbors requested per query.
	K int `yaml:"k"`
	// Seed feeds the random source so runs are reproducible.
	Seed int64 `yaml:"seed"`
	// Min and Max bound the uniform coordinate distribution.
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// DefaultConfig mirrors the reference driver workload: 10,000 points with
// branching factor 20.
func DefaultConfig() Config {
	return Config{
		Dims:       768,
		MaxEntries: 20,
		Points:     10000,
		Queries:    10,
		K:          5,
		Seed:       1,
		Min:        0,
		Max:        1,
	}
}

// loadConfig reads the YAML file at path over the defaults; an empty path
// returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Dims < 1 {
		return fmt.Errorf("config: dims must be >= 1, got %d", c.Dims)
	}
	if c.MaxEntries < 2 {
		return fmt.Errorf("config: max_entries must be >= 2, got %d", c.MaxEntries)
	}
	if c.Points < 0 || c.Queries < 0 || c.K < 0 {
		return fmt.Errorf("config: points, queries and k must be non-negative")
	}
	if c.Max < c.Min {
		return fmt.Errorf("config: max %v below min %v", c.Max, c.Min)
	}
	return nil
}
