package envcheck

import (
	"fmt"
	"strings"
)

// RenderMissingTemplate is the advisory printed when the template file is
// absent. The check is optional by contract.
func RenderMissingTemplate(path string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Did not find file %s.\n", path))
	sb.WriteString("This is used to double check the key settings for the notebook.\n")
	sb.WriteString("This is just a check and is not required.\n\n")
	return sb.String()
}

// Render formats the per-key lines and, when any exist, the trailing issues
// section.
func Render(r Result) string {
	var sb strings.Builder
	for _, line := range r.Lines {
		sb.WriteString(fmt.Sprintf("%s=%s\n", line.Key, line.Display))
	}
	if len(r.Issues) > 0 {
		sb.WriteString("\nIssues found:\n")
		for _, issue := range r.Issues {
			switch issue.Kind {
			case IssuePlaceholder:
				sb.WriteString(fmt.Sprintf("  ⚠️  %s still has the example/placeholder value\n", issue.Key))
			case IssueNotSet:
				sb.WriteString(fmt.Sprintf("  ⚠️  %s is required but not set\n", issue.Key))
			}
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
