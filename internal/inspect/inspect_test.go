package inspect

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"requests", "requests"},
		{"Python-Dotenv", "python-dotenv"},
		{"python_dotenv", "python-dotenv"},
		{"ruamel.yaml", "ruamel-yaml"},
		{"weird__Name--pkg", "weird-name-pkg"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRuntimeIsolated(t *testing.T) {
	tests := []struct {
		name string
		rt   Runtime
		want bool
	}{
		{"distinct prefixes", Runtime{Prefix: "/p/.venv", BasePrefix: "/usr"}, true},
		{"no active prefix", Runtime{BasePrefix: "/usr"}, false},
		{"identical prefixes", Runtime{Prefix: "/usr", BasePrefix: "/usr"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rt.Isolated(); got != tt.want {
				t.Errorf("Isolated() = %v, want %v", got, tt.want)
			}
		})
	}
}

// writeVenv lays out a minimal venv: pyvenv.cfg plus one installed package's
// dist-info metadata.
func writeVenv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	cfg := "home = /usr/bin\nversion = 3.11.4\n"
	if err := os.WriteFile(filepath.Join(root, "pyvenv.cfg"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	sp := filepath.Join(root, "lib", "python3.11", "site-packages")
	distInfo := filepath.Join(sp, "requests-2.31.0.dist-info")
	if err := os.MkdirAll(distInfo, 0o755); err != nil {
		t.Fatal(err)
	}
	metadata := "Metadata-Version: 2.1\nName: requests\nVersion: 2.31.0\n\nbody\n"
	if err := os.WriteFile(filepath.Join(distInfo, "METADATA"), []byte(metadata), 0o644); err != nil {
		t.Fatal(err)
	}

	bare := filepath.Join(sp, "python_dotenv-1.0.1.dist-info")
	if err := os.MkdirAll(bare, 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestSystemRuntime(t *testing.T) {
	root := writeVenv(t)
	sys := NewSystem([]string{"VIRTUAL_ENV=" + root}, ".venv", nil)

	rt, err := sys.Runtime()
	if err != nil {
		t.Fatalf("Runtime: %v", err)
	}
	if rt.Prefix != root {
		t.Errorf("Prefix = %q, want %q", rt.Prefix, root)
	}
	if rt.BasePrefix != "/usr/bin" {
		t.Errorf("BasePrefix = %q, want /usr/bin", rt.BasePrefix)
	}
	if rt.Version != "3.11.4" {
		t.Errorf("Version = %q, want 3.11.4", rt.Version)
	}
	if !rt.Isolated() {
		t.Error("venv runtime should read as isolated")
	}
}

func TestSystemRuntime_FallsBackToVenvDir(t *testing.T) {
	root := writeVenv(t)
	sys := NewSystem(nil, root, nil)

	rt, err := sys.Runtime()
	if err != nil {
		t.Fatalf("Runtime: %v", err)
	}
	if rt.Prefix != "" {
		t.Errorf("Prefix = %q, want empty without VIRTUAL_ENV", rt.Prefix)
	}
	if rt.Version != "3.11.4" {
		t.Errorf("Version = %q, want 3.11.4", rt.Version)
	}
}

func TestSystemRuntime_NoVenv(t *testing.T) {
	sys := NewSystem(nil, filepath.Join(t.TempDir(), "absent"), nil)
	if _, err := sys.Runtime(); err == nil {
		t.Error("expected error without pyvenv.cfg")
	}
}

func TestSystemLookupPackage(t *testing.T) {
	root := writeVenv(t)
	sys := NewSystem([]string{"VIRTUAL_ENV=" + root}, ".venv", nil)

	pkg, ok := sys.LookupPackage("requests")
	if !ok {
		t.Fatal("requests should resolve")
	}
	if pkg.Version != "2.31.0" {
		t.Errorf("Version = %q, want 2.31.0", pkg.Version)
	}
	if pkg.Location == "" {
		t.Error("Location should be the site-packages dir")
	}

	// Metadata-less dist-info resolves from the directory name, through
	// name normalization.
	pkg, ok = sys.LookupPackage("python-dotenv")
	if !ok {
		t.Fatal("python-dotenv should resolve from the dir name")
	}
	if pkg.Version != "1.0.1" {
		t.Errorf("Version = %q, want 1.0.1", pkg.Version)
	}

	if _, ok := sys.LookupPackage("absent-package"); ok {
		t.Error("absent package must not resolve")
	}
}

func TestSystemGetenv(t *testing.T) {
	sys := NewSystem([]string{"A=1", "B="}, ".venv", nil)

	if v, ok := sys.Getenv("A"); !ok || v != "1" {
		t.Errorf("Getenv(A) = %q, %v", v, ok)
	}
	if v, ok := sys.Getenv("B"); !ok || v != "" {
		t.Errorf("Getenv(B) = %q, %v; empty values are still set", v, ok)
	}
	if _, ok := sys.Getenv("C"); ok {
		t.Error("unset key must not resolve")
	}
}
