// Package inspect wraps the process and filesystem state the audit checks
// read: environment variables, the executable search path, the active
// interpreter runtime, and installed package metadata. Checks depend on the
// Inspector interface so tests can substitute a Fake instead of real state.
package inspect

import "strings"

// Runtime describes the interpreter environment the audit runs against.
type Runtime struct {
	Prefix     string // active installation prefix ("" when not isolated)
	BasePrefix string // base/system prefix the isolation derives from
	Version    string // interpreter version, e.g. "3.11.4"
	Executable string // path to the interpreter binary
}

// Isolated reports whether the runtime is an isolated environment: an active
// prefix exists and differs from the base prefix.
func (r Runtime) Isolated() bool {
	return r.Prefix != "" && r.Prefix != r.BasePrefix
}

// Package is one installed distribution's metadata.
type Package struct {
	Name     string // canonical distribution name
	Version  string // installed version string
	Location string // install location (site-packages root)
}

// Inspector is the read-only view of process state the checks consume.
type Inspector interface {
	// Getenv looks up an environment variable by exact key.
	Getenv(key string) (string, bool)

	// LookPath resolves an executable name on the search path.
	LookPath(name string) (string, error)

	// Runtime returns the active interpreter runtime.
	Runtime() (Runtime, error)

	// LookupPackage resolves installed metadata for a distribution name.
	// Absence is a normal outcome, reported via the bool.
	LookupPackage(name string) (Package, bool)
}

// NormalizeName canonicalizes a distribution name: runs of ".", "-" and "_"
// collapse to a single "-", and the result is lowercased (PEP 503 rules).
func NormalizeName(name string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(name) {
		if r == '.' || r == '-' || r == '_' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('-')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}
