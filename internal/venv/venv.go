// Package venv audits runtime isolation: whether the process environment is
// an activated virtual environment, whether it is the expected one, and
// whether the recommended manager is installed.
package venv

import (
	"path/filepath"

	"preflight/internal/inspect"
)

// DefaultPath is the conventional local venv directory.
const DefaultPath = ".venv"

// ManagerTool is the recommended environment manager to look for on PATH.
const ManagerTool = "uv"

// Findings is the computed state of the isolation audit, separate from its
// rendering.
type Findings struct {
	Isolated     bool   // an isolated runtime is active
	ActivePrefix string // resolved active prefix (when isolated)
	ExpectedPath string // resolved expected venv path
	PathMatch    bool   // active prefix matches the expected path
	ToolFound    bool   // manager resolved on PATH
}

// HasIssues reports whether any advisory condition failed.
func (f Findings) HasIssues() bool {
	return !f.Isolated || !f.PathMatch || !f.ToolFound
}

// Audit inspects the runtime and search path. expectedPath defaults to
// DefaultPath when empty. Nothing here is fatal: a runtime that cannot be
// resolved simply reads as not isolated.
func Audit(ins inspect.Inspector, expectedPath string) Findings {
	if expectedPath == "" {
		expectedPath = DefaultPath
	}
	f := Findings{ExpectedPath: resolvePath(expectedPath)}

	rt, err := ins.Runtime()
	if err == nil && rt.Isolated() {
		f.Isolated = true
		f.ActivePrefix = resolvePath(rt.Prefix)
		f.PathMatch = f.ActivePrefix == f.ExpectedPath
	}

	if _, err := ins.LookPath(ManagerTool); err == nil {
		f.ToolFound = true
	}
	return f
}

// resolvePath makes a path absolute and symlink-free so two spellings of the
// same venv compare equal. Resolution failures keep the absolute form.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
