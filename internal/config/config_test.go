package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Reasoning.MaxForwardIterations != 100 {
		t.Errorf("MaxForwardIterations = %d, want 100", cfg.Reasoning.MaxForwardIterations)
	}
	if cfg.Reasoning.MaxProofDepth != 50 {
		t.Errorf("MaxProofDepth = %d, want 50", cfg.Reasoning.MaxProofDepth)
	}
	if cfg.Ontology.MaxClosureIterations != 100 {
		t.Errorf("MaxClosureIterations = %d, want 100", cfg.Ontology.MaxClosureIterations)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
reasoning:
  max_forward_iterations: 250
logging:
  level: debug
  development: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reasoning.MaxForwardIterations != 250 {
		t.Errorf("MaxForwardIterations = %d, want 250", cfg.Reasoning.MaxForwardIterations)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Development {
		t.Errorf("logging config not applied: %+v", cfg.Logging)
	}
	// Unset bounds fall back to defaults; caps must never be disabled.
	if cfg.Reasoning.MaxProofDepth != 50 {
		t.Errorf("MaxProofDepth = %d, want default 50", cfg.Reasoning.MaxProofDepth)
	}
	if cfg.Ontology.MaxClosureIterations != 100 {
		t.Errorf("MaxClosureIterations = %d, want default 100", cfg.Ontology.MaxClosureIterations)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("reasoning: ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadNegativeBoundsBackfilled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
reasoning:
  max_forward_iterations: -5
  max_proof_depth: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reasoning.MaxForwardIterations != 100 || cfg.Reasoning.MaxProofDepth != 50 {
		t.Errorf("non-positive bounds must be backfilled, got %+v", cfg.Reasoning)
	}
}
