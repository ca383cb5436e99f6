// Package envcheck compares live environment variables against a parsed
// template file: every template key is reported with a masked view of its
// live value, and required keys that are unset or still carry the example
// value are collected as issues.
package envcheck

import (
	"preflight/internal/envfile"
	"preflight/internal/inspect"
	"preflight/internal/mask"
)

// IssueKind classifies a compliance issue.
type IssueKind string

const (
	IssuePlaceholder IssueKind = "placeholder" // required key still equals the example value
	IssueNotSet      IssueKind = "not-set"     // required key absent from the environment
)

// Line is one reported key in file order.
type Line struct {
	Key     string
	Display string // masked live value, or "<not set>"
	Set     bool
}

// Issue is one recorded compliance problem.
type Issue struct {
	Key  string
	Kind IssueKind
}

// Result holds the full compliance report state before rendering.
type Result struct {
	Lines  []Line
	Issues []Issue
}

// Check walks the template's key set in file order and compares each key
// against the live environment. Live values are read at check time and never
// written back.
func Check(ins inspect.Inspector, f envfile.File) Result {
	var r Result
	for _, key := range f.Keys {
		current, ok := ins.Getenv(key)
		if !ok {
			r.Lines = append(r.Lines, Line{Key: key, Display: "<not set>"})
			if _, required := f.Required[key]; required {
				r.Issues = append(r.Issues, Issue{Key: key, Kind: IssueNotSet})
			}
			continue
		}
		r.Lines = append(r.Lines, Line{Key: key, Display: mask.Summarize(current), Set: true})
		if example, required := f.Required[key]; required && current == example {
			r.Issues = append(r.Issues, Issue{Key: key, Kind: IssuePlaceholder})
		}
	}
	return r
}
