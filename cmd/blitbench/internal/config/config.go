// Package config loads the optional blitbench.yaml benchmark configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional blitbench.yaml configuration.
type Config struct {
	Bench BenchConfig `yaml:"bench"`
}

// BenchConfig contains benchmark settings.
type BenchConfig struct {
	// Sizes are the buffer sizes in bytes to measure.
	Sizes []int `yaml:"sizes,omitempty"`
	// Iterations is the number of passes per size.
	Iterations int `yaml:"iterations,omitempty"`
	// Value is the fill byte used by the set benchmark.
	Value uint8 `yaml:"value,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Sizes      []int
	Iterations int
	Value      uint8
}

// defaultSizes spans the small-copy dispatch range, the alignment peel, and
// bulk block sizes.
var defaultSizes = []int{8, 16, 64, 256, 4096, 65536, 1 << 20}

const defaultIterations = 200

// LoadOptional reads blitbench.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "blitbench.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read blitbench.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse blitbench.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads blitbench.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	sizes := cfg.Bench.Sizes
	if len(sizes) == 0 {
		sizes = defaultSizes
	}
	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("bench.sizes entries must be positive (got %d)", size)
		}
	}

	iterations := cfg.Bench.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Sizes:      sizes,
		Iterations: iterations,
		Value:      cfg.Bench.Value,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
