// Package cli holds the audit's configurable defaults, optionally loaded
// from a preflight.yaml file in the working directory. Flags override file
// values; the file itself is optional.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional defaults file looked up in the audit
// directory.
const ConfigFileName = "preflight.yaml"

// Config is the set of audit defaults.
type Config struct {
	EnvFile  string `yaml:"envFile"`  // template file path
	Manifest string `yaml:"manifest"` // project manifest path
	Venv     string `yaml:"venv"`     // expected virtual environment path
	Verbose  bool   `yaml:"verbose"`  // always print the dependency table
}

// Default returns the conventional defaults.
func Default() Config {
	return Config{
		EnvFile:  "example.env",
		Manifest: "pyproject.toml",
		Venv:     ".venv",
	}
}

// Load merges preflight.yaml from dir over the defaults. A missing file
// yields the plain defaults; a malformed file is an error.
func Load(dir string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid YAML in %s: %w", ConfigFileName, err)
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = Default().EnvFile
	}
	if cfg.Manifest == "" {
		cfg.Manifest = Default().Manifest
	}
	if cfg.Venv == "" {
		cfg.Venv = Default().Venv
	}
	return cfg, nil
}
