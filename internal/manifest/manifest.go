// Package manifest reads the project manifest (pyproject.toml) fields the
// dependency audit consumes: the runtime version requirement and the declared
// dependency list.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Manifest is the subset of the project table the audit reads.
type Manifest struct {
	RequiresPython string   // raw requires-python expression, may be empty
	Dependencies   []string // PEP 621 dependency declarations, file order
}

// manifestFile mirrors the TOML document structure.
type manifestFile struct {
	Project struct {
		RequiresPython string   `toml:"requires-python"`
		Dependencies   []string `toml:"dependencies"`
	} `toml:"project"`
}

// Load reads and parses a manifest. A missing file is reported via the raw
// os.IsNotExist error so callers can degrade to the reported-error path.
func Load(path string) (Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, err
		}
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(content)
}

// Parse decodes manifest content.
func Parse(content []byte) (Manifest, error) {
	var mf manifestFile
	if err := toml.Unmarshal(content, &mf); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}
	return Manifest{
		RequiresPython: mf.Project.RequiresPython,
		Dependencies:   mf.Project.Dependencies,
	}, nil
}
