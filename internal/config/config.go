// Package config holds the reasoning core's configuration: iteration bounds
// for the termination-sensitive loops, logging, and the optional ontology
// constraints file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all aiql-core configuration.
type Config struct {
	Reasoning ReasoningConfig `yaml:"reasoning"`
	Ontology  OntologyConfig  `yaml:"ontology"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ReasoningConfig bounds the chaining engine.
type ReasoningConfig struct {
	// MaxForwardIterations caps full passes of forward chaining.
	MaxForwardIterations int `yaml:"max_forward_iterations"`
	// MaxProofDepth caps backward-chaining recursion.
	MaxProofDepth int `yaml:"max_proof_depth"`
}

// OntologyConfig bounds the ontology reasoner.
type OntologyConfig struct {
	// MaxClosureIterations caps transitive-closure passes.
	MaxClosureIterations int `yaml:"max_closure_iterations"`
	// ConstraintsPath optionally names a YAML file of extra property
	// constraints and disjoint class pairs, merged over the built-in
	// defaults.
	ConstraintsPath string `yaml:"constraints_path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the production defaults.
func Default() Config {
	return Config{
		Reasoning: ReasoningConfig{
			MaxForwardIterations: 100,
			MaxProofDepth:        50,
		},
		Ontology: OntologyConfig{
			MaxClosureIterations: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file, filling unset bounds from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize backfills non-positive bounds with defaults so a partial config
// file never disables a termination cap.
func (c *Config) normalize() {
	def := Default()
	if c.Reasoning.MaxForwardIterations <= 0 {
		c.Reasoning.MaxForwardIterations = def.Reasoning.MaxForwardIterations
	}
	if c.Reasoning.MaxProofDepth <= 0 {
		c.Reasoning.MaxProofDepth = def.Reasoning.MaxProofDepth
	}
	if c.Ontology.MaxClosureIterations <= 0 {
		c.Ontology.MaxClosureIterations = def.Ontology.MaxClosureIterations
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}
