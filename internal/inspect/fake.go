package inspect

import (
	"fmt"
	"os/exec"
)

// Fake is an in-memory Inspector for tests.
type Fake struct {
	Env      map[string]string  // environment variables
	Path     map[string]string  // executable name -> resolved path
	Rt       Runtime            // runtime returned by Runtime
	RtErr    error              // error returned by Runtime
	Packages map[string]Package // canonical name -> installed package
}

// Getenv looks up a variable in Env.
func (f *Fake) Getenv(key string) (string, bool) {
	v, ok := f.Env[key]
	return v, ok
}

// LookPath resolves against Path, returning exec.ErrNotFound semantics for
// unknown names.
func (f *Fake) LookPath(name string) (string, error) {
	if p, ok := f.Path[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
}

// Runtime returns the configured runtime.
func (f *Fake) Runtime() (Runtime, error) {
	return f.Rt, f.RtErr
}

// LookupPackage resolves against Packages by canonical name.
func (f *Fake) LookupPackage(name string) (Package, bool) {
	p, ok := f.Packages[NormalizeName(name)]
	return p, ok
}
