package venv

import (
	"fmt"
	"strings"
)

// Render formats findings as the isolation report block. Advisory only; the
// caller decides what to do with a non-empty issue list.
func Render(f Findings) string {
	var issues []string

	if !f.Isolated {
		issues = append(issues,
			"⚠️  Virtual environment is not activated",
			"   Run: source .venv/bin/activate  (or .venv\\Scripts\\activate on Windows)")
	} else if !f.PathMatch {
		issues = append(issues, fmt.Sprintf(
			"⚠️  Activated venv (%s) doesn't match expected path (%s)",
			f.ActivePrefix, f.ExpectedPath))
	}

	if !f.ToolFound {
		issues = append(issues,
			fmt.Sprintf("ℹ️  '%s' command not found - this project recommends using %s for package management", ManagerTool, ManagerTool),
			fmt.Sprintf("   Install %s: https://docs.astral.sh/uv/", ManagerTool))
	}

	var sb strings.Builder
	if len(issues) > 0 {
		sb.WriteString("Virtual Environment Check:\n")
		for _, issue := range issues {
			sb.WriteString(issue)
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("✅ Virtual environment is properly activated\n")
		sb.WriteString(fmt.Sprintf("✅ %s is available\n", ManagerTool))
	}
	sb.WriteString("\n")
	return sb.String()
}
