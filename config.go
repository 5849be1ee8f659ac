package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlannerConfig carries every tunable the planner uses. A config value
// is built once, passed by value, and never mutated mid-call.
type PlannerConfig struct {
	// AgentHalfWidth is half the performer's collision width.
	AgentHalfWidth float64 `yaml:"agentHalfWidth"`
	// BoundaryTolerance is added to AgentHalfWidth when insetting the
	// room rectangle, so the performer never scrapes the walls.
	BoundaryTolerance float64 `yaml:"boundaryTolerance"`
	// DilationMargin is how far obstacle footprints are buffered
	// outward before they become navigation holes.
	DilationMargin float64 `yaml:"dilationMargin"`
	// ReachDistance is how far from the target footprint the performer
	// may stand and still interact with it.
	ReachDistance float64 `yaml:"reachDistance"`
	// RotationIncrement is the degrees turned by one rotate action.
	RotationIncrement float64 `yaml:"rotationIncrement"`
	// MoveIncrement is the distance covered by one move action.
	MoveIncrement float64 `yaml:"moveIncrement"`
	// RotationEdgeBucket: when the fractional part of the rotate count
	// is within this distance of 0 or 1, an extra candidate one step
	// beyond floor/ceil is generated. Applies to rotation only.
	RotationEdgeBucket float64 `yaml:"rotationEdgeBucket"`
	// Epsilon is positional equality tolerance.
	Epsilon float64 `yaml:"epsilon"`
	// MaxBranches caps the total number of branches one planning call
	// may expand across all hops of one approach point.
	MaxBranches int `yaml:"maxBranches"`
	// MaxGraphNodes caps visibility graph size.
	MaxGraphNodes int `yaml:"maxGraphNodes"`
	// MinObstacleMass: scene objects lighter than this cannot block
	// the performer and are not registered as obstacles.
	MinObstacleMass float64 `yaml:"minObstacleMass"`
}

// DefaultConfig returns the planner defaults used by the batch
// generator when no config file is given.
func DefaultConfig() PlannerConfig {
	return PlannerConfig{
		AgentHalfWidth:     0.27,
		BoundaryTolerance:  0.02,
		DilationMargin:     0.28,
		ReachDistance:      1.0,
		RotationIncrement:  10.0,
		MoveIncrement:      0.1,
		RotationEdgeBucket: 0.2,
		Epsilon:            0.01,
		MaxBranches:        512,
		MaxGraphNodes:      1000,
		MinObstacleMass:    1.0,
	}
}

// LoadConfig reads a YAML config file over the defaults. Fields absent
// from the file keep their default values.
func LoadConfig(filename string) (PlannerConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c PlannerConfig) validate() error {
	if c.RotationIncrement <= 0 {
		return fmt.Errorf("rotationIncrement must be positive, got %v", c.RotationIncrement)
	}
	if c.MoveIncrement <= 0 {
		return fmt.Errorf("moveIncrement must be positive, got %v", c.MoveIncrement)
	}
	if c.AgentHalfWidth < 0 || c.DilationMargin < 0 || c.ReachDistance < 0 {
		return fmt.Errorf("margins must be non-negative")
	}
	if c.MaxBranches <= 0 {
		return fmt.Errorf("maxBranches must be positive, got %d", c.MaxBranches)
	}
	return nil
}
