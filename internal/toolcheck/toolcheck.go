// Package toolcheck verifies that manually installed executables named by the
// template's directive line are resolvable on the search path.
package toolcheck

import (
	"fmt"
	"strings"

	"preflight/internal/inspect"
)

// Tool is one checked executable.
type Tool struct {
	Name string
	Path string // resolved location, empty when not found
}

// Result partitions the checked tools, each list in declaration order.
type Result struct {
	Found   []Tool
	Missing []Tool
}

// Skipped reports whether there was nothing to check.
func (r Result) Skipped() bool {
	return len(r.Found) == 0 && len(r.Missing) == 0
}

// Check resolves each name against the search path. An empty name list means
// the directive was absent or empty; the whole check is a no-op then.
func Check(ins inspect.Inspector, names []string) Result {
	var r Result
	for _, name := range names {
		if path, err := ins.LookPath(name); err == nil {
			r.Found = append(r.Found, Tool{Name: name, Path: path})
		} else {
			r.Missing = append(r.Missing, Tool{Name: name})
		}
	}
	return r
}

// Render formats the report block. A skipped check renders nothing.
func Render(r Result) string {
	if r.Skipped() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Manual Installs Check:\n")
	for _, t := range r.Found {
		sb.WriteString(fmt.Sprintf("✅ %s\n", t.Name))
	}
	for _, t := range r.Missing {
		sb.WriteString(fmt.Sprintf("⚠️  %s not found in PATH\n", t.Name))
	}
	sb.WriteString("\n")
	return sb.String()
}
