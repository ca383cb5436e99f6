package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "envFile: .env.example\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnvFile != ".env.example" {
		t.Errorf("EnvFile = %q, want override", cfg.EnvFile)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be overridden to true")
	}
	// Unset fields keep their defaults.
	if cfg.Manifest != Default().Manifest {
		t.Errorf("Manifest = %q, want default", cfg.Manifest)
	}
	if cfg.Venv != Default().Venv {
		t.Errorf("Venv = %q, want default", cfg.Venv)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("envFile: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
