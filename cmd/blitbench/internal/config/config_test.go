package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/bench\n\ngo 1.24.0\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ModulePath != "example.com/bench" {
		t.Errorf("ModulePath = %q", resolved.ModulePath)
	}
	if len(resolved.Sizes) == 0 {
		t.Error("default sizes should not be empty")
	}
	if resolved.Iterations != defaultIterations {
		t.Errorf("Iterations = %d, want %d", resolved.Iterations, defaultIterations)
	}
}

func TestResolve_FromYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/bench\n\ngo 1.24.0\n")
	writeFile(t, dir, "blitbench.yaml", "bench:\n  sizes: [32, 64]\n  iterations: 5\n  value: 0xab\n")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(resolved.Sizes) != 2 || resolved.Sizes[0] != 32 || resolved.Sizes[1] != 64 {
		t.Errorf("Sizes = %v, want [32 64]", resolved.Sizes)
	}
	if resolved.Iterations != 5 {
		t.Errorf("Iterations = %d, want 5", resolved.Iterations)
	}
	if resolved.Value != 0xAB {
		t.Errorf("Value = %#x, want 0xab", resolved.Value)
	}
}

func TestResolve_RejectsBadSizes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/bench\n\ngo 1.24.0\n")
	writeFile(t, dir, "blitbench.yaml", "bench:\n  sizes: [0]\n")

	if _, err := Resolve(dir); err == nil {
		t.Error("non-positive size should be rejected")
	}
}

func TestResolve_MissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("missing go.mod should fail")
	}
}

func TestLoadOptional_Absent(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(cfg.Bench.Sizes) != 0 {
		t.Errorf("absent config should be empty, got %+v", cfg)
	}
}
