// Package depcheck resolves a manifest's dependency declarations against
// installed package metadata and classifies each as OK, version mismatch, or
// missing. Deciding whether to print and rendering the table are separate
// steps so the quiet-by-default policy stays testable on its own.
package depcheck

import (
	"preflight/internal/inspect"
	"preflight/internal/manifest"
	"preflight/internal/pep"
)

// DefaultRequiresPython applies when the manifest declares no runtime
// requirement.
const DefaultRequiresPython = ">=3.11"

// Status classifies one resolved dependency row.
type Status string

const (
	StatusOK       Status = "✅ OK"
	StatusMismatch Status = "⚠️ Version mismatch"
	StatusMissing  Status = "❌ Missing"
)

// Row is one dependency's resolution. Status is derived from the declaration
// and installed state alone; re-resolving the same inputs reproduces it.
type Row struct {
	Package   string
	Required  string // specifier text, "(any)" or "(unparsed)"
	Installed string // installed version, "-" when missing
	Status    Status
	Location  string // install location, "-" when missing
}

// Result is the computed outcome of one dependency audit.
type Result struct {
	PythonVersion  string // current runtime version, "unknown" if unresolvable
	RequiresPython string // effective requirement expression
	PythonOK       bool
	Executable     string
	NoDependencies bool
	Rows           []Row
}

// Problems returns every non-OK row.
func (r Result) Problems() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Status != StatusOK {
			out = append(out, row)
		}
	}
	return out
}

// ShouldPrint is the quiet-by-default policy: report only when asked to be
// verbose, when the runtime check failed, or when any row has a problem.
func ShouldPrint(r Result, verbose bool) bool {
	return verbose || !r.PythonOK || len(r.Problems()) > 0
}

// Resolve checks the current runtime against the manifest's requirement and
// resolves every declared dependency. Unparsable declarations and specifier
// evaluations degrade per item; nothing here aborts the batch.
func Resolve(ins inspect.Inspector, m manifest.Manifest) Result {
	r := Result{
		RequiresPython: m.RequiresPython,
		NoDependencies: len(m.Dependencies) == 0,
	}
	if r.RequiresPython == "" {
		r.RequiresPython = DefaultRequiresPython
	}

	rt, err := ins.Runtime()
	if err == nil && rt.Version != "" {
		r.PythonVersion = rt.Version
		r.Executable = rt.Executable
		r.PythonOK = runtimeSatisfies(r.RequiresPython, rt.Version)
	} else {
		r.PythonVersion = "unknown"
	}

	for _, decl := range m.Dependencies {
		r.Rows = append(r.Rows, resolveOne(ins, decl))
	}
	return r
}

// runtimeSatisfies evaluates the runtime requirement. An unparsable
// requirement cannot be disproven and reads as satisfied.
func runtimeSatisfies(requires, version string) bool {
	ok, err := pep.Satisfies(requires, version)
	if err != nil {
		return pep.ParseableVersion(version)
	}
	return ok
}

// resolveOne classifies a single declaration against installed metadata.
func resolveOne(ins inspect.Inspector, decl string) Row {
	req := pep.ParseRequirement(decl)
	row := Row{
		Package:   req.Name,
		Required:  req.Spec,
		Installed: "-",
		Location:  "-",
		Status:    StatusMissing,
	}

	pkg, installed := ins.LookupPackage(req.Name)
	if !installed {
		return row
	}
	row.Installed = pkg.Version
	row.Location = pkg.Location
	if row.Location == "" {
		row.Location = "(unknown)"
	}

	if req.Kind != pep.KindRange {
		// Presence satisfies an unconstrained or unparseable declaration.
		row.Status = StatusOK
		return row
	}
	ok, err := pep.Satisfies(req.Spec, pkg.Version)
	if err != nil || ok {
		// Evaluation failures degrade to OK: the constraint cannot be
		// disproven against a version we cannot compare.
		row.Status = StatusOK
	} else {
		row.Status = StatusMismatch
	}
	return row
}
