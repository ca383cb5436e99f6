package inspect

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// System is the real Inspector. It works from a captured environ slice rather
// than global lookups, resolves the runtime from pyvenv.cfg, and scans
// site-packages dist-info metadata for installed packages.
type System struct {
	// VenvDir is where to look for pyvenv.cfg when VIRTUAL_ENV is unset.
	VenvDir string

	env    map[string]string
	logger *zap.Logger

	scanOnce sync.Once
	packages map[string]Package
}

// NewSystem builds a System from an environ slice (os.Environ() format).
// A nil logger disables tracing.
func NewSystem(environ []string, venvDir string, logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.Index(kv, "="); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return &System{VenvDir: venvDir, env: env, logger: logger}
}

// Getenv looks up a variable in the captured environ.
func (s *System) Getenv(key string) (string, bool) {
	v, ok := s.env[key]
	return v, ok
}

// LookPath resolves a name on the search path.
func (s *System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Runtime resolves the interpreter runtime. The active prefix is whatever
// VIRTUAL_ENV holds (the activation marker); version and base prefix come from
// pyvenv.cfg under the active prefix, falling back to VenvDir.
func (s *System) Runtime() (Runtime, error) {
	rt := Runtime{}
	if v, ok := s.env["VIRTUAL_ENV"]; ok && v != "" {
		rt.Prefix = v
	}

	cfgDir := rt.Prefix
	if cfgDir == "" {
		cfgDir = s.VenvDir
	}
	cfg, err := readPyvenvCfg(filepath.Join(cfgDir, "pyvenv.cfg"))
	if err != nil {
		return rt, fmt.Errorf("resolve runtime: %w", err)
	}
	rt.BasePrefix = cfg["home"]
	rt.Version = cfg["version"]
	if rt.Version == "" {
		rt.Version = cfg["version_info"]
	}
	rt.Executable = interpreterPath(cfgDir)
	s.logger.Debug("resolved runtime",
		zap.String("prefix", rt.Prefix),
		zap.String("version", rt.Version))
	return rt, nil
}

// LookupPackage resolves an installed distribution by canonical name.
func (s *System) LookupPackage(name string) (Package, bool) {
	s.scanOnce.Do(s.scanPackages)
	pkg, ok := s.packages[NormalizeName(name)]
	return pkg, ok
}

// scanPackages walks every site-packages directory under the venv once and
// indexes *.dist-info metadata by canonical name.
func (s *System) scanPackages() {
	s.packages = make(map[string]Package)
	for _, dir := range s.sitePackagesDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() || !strings.HasSuffix(e.Name(), ".dist-info") {
				continue
			}
			pkg := readDistInfo(filepath.Join(dir, e.Name()))
			pkg.Location = dir
			if pkg.Name == "" {
				continue
			}
			s.packages[NormalizeName(pkg.Name)] = pkg
		}
		s.logger.Debug("scanned site-packages", zap.String("dir", dir))
	}
}

// sitePackagesDirs lists candidate site-packages locations for the active or
// configured venv, covering both POSIX and Windows layouts.
func (s *System) sitePackagesDirs() []string {
	root := s.VenvDir
	if v, ok := s.env["VIRTUAL_ENV"]; ok && v != "" {
		root = v
	}
	var dirs []string
	if matches, err := filepath.Glob(filepath.Join(root, "lib", "python*", "site-packages")); err == nil {
		dirs = append(dirs, matches...)
	}
	dirs = append(dirs, filepath.Join(root, "Lib", "site-packages"))
	return dirs
}

// readDistInfo extracts Name and Version from a dist-info METADATA file,
// falling back to the "name-version" directory naming convention.
func readDistInfo(dir string) Package {
	var pkg Package
	f, err := os.Open(filepath.Join(dir, "METADATA"))
	if err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				break // end of headers
			}
			if v, ok := strings.CutPrefix(line, "Name: "); ok {
				pkg.Name = strings.TrimSpace(v)
			} else if v, ok := strings.CutPrefix(line, "Version: "); ok {
				pkg.Version = strings.TrimSpace(v)
			}
			if pkg.Name != "" && pkg.Version != "" {
				break
			}
		}
		f.Close()
	}
	if pkg.Name == "" || pkg.Version == "" {
		base := strings.TrimSuffix(filepath.Base(dir), ".dist-info")
		if i := strings.LastIndex(base, "-"); i > 0 {
			if pkg.Name == "" {
				pkg.Name = base[:i]
			}
			if pkg.Version == "" {
				pkg.Version = base[i+1:]
			}
		}
	}
	return pkg
}

// readPyvenvCfg parses the "key = value" lines of a pyvenv.cfg file.
func readPyvenvCfg(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "="); i >= 0 {
			cfg[strings.TrimSpace(line[:i])] = strings.TrimSpace(line[i+1:])
		}
	}
	return cfg, sc.Err()
}

// interpreterPath returns the venv's interpreter binary path.
func interpreterPath(root string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(root, "Scripts", "python.exe")
	}
	return filepath.Join(root, "bin", "python")
}
