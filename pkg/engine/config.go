package engine

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rehmanul/ilot-placement/pkg/catalog"
	"github.com/rehmanul/ilot-placement/pkg/fitness"
)

// Config collects every tunable named by §6: the size mix and density
// target that drive catalog derivation, the corridor/clearance geometry,
// the evolutionary search parameters, the fitness weights, and the master
// seed. It is the single input (alongside a floorplan.FloorPlan) to
// Optimize.
type Config struct {
	// SizeMix is the small/medium/large îlot percentage split. Must sum
	// to 100.
	SizeMix catalog.SizeMix `yaml:"sizeMix" json:"sizeMix"`

	// CorridorWidth is the corridor width in meters (0.8-3.0, default 1.2).
	CorridorWidth float64 `yaml:"corridorWidth" json:"corridorWidth"`

	// MinClearance is the minimum gap between îlots in meters (0.5-2.0,
	// default 1.2).
	MinClearance float64 `yaml:"minClearance" json:"minClearance"`

	// ADACompliance enables the ADA corridor-width fitness term (default
	// true).
	ADACompliance bool `yaml:"adaCompliance" json:"adaCompliance"`

	// MaxDensity is the target fraction (0, 1] of usable area the catalog
	// aims to fill at full utilization (default 0.80).
	MaxDensity float64 `yaml:"maxDensity" json:"maxDensity"`

	// PopulationSize is the evolutionary population size (10-200, default
	// 50).
	PopulationSize int `yaml:"populationSize" json:"populationSize"`

	// Generations is the generation cap (50-500, default 100).
	Generations int `yaml:"generations" json:"generations"`

	// MutationRate is the per-child mutation probability (0.01-0.5,
	// default 0.10).
	MutationRate float64 `yaml:"mutationRate" json:"mutationRate"`

	// CrossoverRate is the probability a child is bred via crossover
	// rather than cloned (0.5-1.0, default 0.80).
	CrossoverRate float64 `yaml:"crossoverRate" json:"crossoverRate"`

	// EliteSize is the number of top candidates copied verbatim into the
	// next generation (0..populationSize/2, default 5).
	EliteSize int `yaml:"eliteSize" json:"eliteSize"`

	// FitnessWeights weights the four fitness terms. Must sum to 1.
	FitnessWeights fitness.Weights `yaml:"fitnessWeights" json:"fitnessWeights"`

	// GridCellSize is the obstacle-grid resolution in meters (default
	// 0.5).
	GridCellSize float64 `yaml:"gridCellSize" json:"gridCellSize"`

	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from the current time.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		SizeMix:        catalog.SizeMix{SmallPercent: 50, MediumPercent: 30, LargePercent: 20},
		CorridorWidth:  1.2,
		MinClearance:   1.2,
		ADACompliance:  true,
		MaxDensity:     0.80,
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.10,
		CrossoverRate:  0.80,
		EliteSize:      5,
		FitnessWeights: fitness.DefaultWeights,
		GridCellSize:   0.5,
	}
}

// LoadConfig reads and validates a YAML configuration file. A zero Seed is
// auto-generated from the current time before validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses a YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, newConfigError(err)
	}
	return &cfg, nil
}

// Validate checks every field against §6's documented ranges, aggregating
// the sub-validations of SizeMix and FitnessWeights.
func (c *Config) Validate() error {
	if err := c.SizeMix.Validate(); err != nil {
		return fmt.Errorf("sizeMix: %w", err)
	}
	if c.CorridorWidth < 0.8 || c.CorridorWidth > 3.0 {
		return fmt.Errorf("corridorWidth must be in [0.8, 3.0], got %v", c.CorridorWidth)
	}
	if c.MinClearance < 0.5 || c.MinClearance > 2.0 {
		return fmt.Errorf("minClearance must be in [0.5, 2.0], got %v", c.MinClearance)
	}
	if c.MaxDensity <= 0 || c.MaxDensity > 1 {
		return fmt.Errorf("maxDensity must be in (0, 1], got %v", c.MaxDensity)
	}
	if c.PopulationSize < 10 || c.PopulationSize > 200 {
		return fmt.Errorf("populationSize must be in [10, 200], got %d", c.PopulationSize)
	}
	if c.Generations < 50 || c.Generations > 500 {
		return fmt.Errorf("generations must be in [50, 500], got %d", c.Generations)
	}
	if c.MutationRate < 0.01 || c.MutationRate > 0.5 {
		return fmt.Errorf("mutationRate must be in [0.01, 0.5], got %v", c.MutationRate)
	}
	if c.CrossoverRate < 0.5 || c.CrossoverRate > 1.0 {
		return fmt.Errorf("crossoverRate must be in [0.5, 1.0], got %v", c.CrossoverRate)
	}
	if c.EliteSize < 0 || c.EliteSize > c.PopulationSize/2 {
		return fmt.Errorf("eliteSize must be in [0, populationSize/2=%d], got %d", c.PopulationSize/2, c.EliteSize)
	}
	if err := c.FitnessWeights.Validate(); err != nil {
		return fmt.Errorf("fitnessWeights: %w", err)
	}
	if c.GridCellSize <= 0 {
		return fmt.Errorf("gridCellSize must be > 0, got %v", c.GridCellSize)
	}
	return nil
}

// ToYAML marshals the config back to YAML, used by Hash for a deterministic
// canonical representation.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// per-stage RNG seeds (pkg/rng.NewRNG(seed, stageName, configHash)).
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("seed:%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

// generateSeed creates a seed from the current time with nanosecond
// precision.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
