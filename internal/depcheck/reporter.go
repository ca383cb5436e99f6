package depcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxPathWidth bounds the path column; longer locations are right-truncated
// behind a leading ellipsis. The issues section always shows full paths.
const maxPathWidth = 80

// RenderMissingManifest is the reported (recoverable) error for an absent
// manifest file.
func RenderMissingManifest(path string) string {
	return fmt.Sprintf("ERROR: %s not found.\n", path)
}

// Render formats the full dependency report: runtime status, the fixed-width
// table, the issues section, and the interpreter identity footer. Callers
// gate it behind ShouldPrint.
func Render(r Result) string {
	var sb strings.Builder
	sb.WriteString(pythonStatus(r))

	if r.NoDependencies {
		// Terse path: no table when nothing is declared.
		sb.WriteString("No [project].dependencies found in pyproject.toml.\n")
		sb.WriteString(fmt.Sprintf("Executable: %s\n", r.Executable))
		return sb.String()
	}

	headers := []string{"package", "required", "installed", "status", "path"}
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Package, row.Required, row.Installed, string(row.Status), shortPath(row.Location),
		})
	}
	widths := columnWidths(headers, rows)

	sb.WriteString(formatRow(headers, widths))
	sb.WriteString(formatRow(dashes(widths), widths))
	for _, row := range rows {
		sb.WriteString(formatRow(row, widths))
	}

	if problems := r.Problems(); len(problems) > 0 {
		sb.WriteString("\nIssues detected:\n")
		for _, p := range problems {
			sb.WriteString(fmt.Sprintf("- %s: %s (required %s, installed %s, path %s)\n",
				p.Package, p.Status, p.Required, p.Installed, p.Location))
		}
	}

	sb.WriteString("\nEnvironment:\n")
	sb.WriteString(fmt.Sprintf("- Executable: %s\n", r.Executable))
	return sb.String()
}

// pythonStatus is the one-line runtime verdict.
func pythonStatus(r Result) string {
	verdict := "satisfies"
	if !r.PythonOK {
		verdict = "DOES NOT satisfy"
	}
	return fmt.Sprintf("Python %s %s requires-python: %s\n", r.PythonVersion, verdict, r.RequiresPython)
}

// columnWidths sizes each column to its widest header or cell.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// formatRow left-justifies cells to their column widths, joined by " | ".
func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		if pad < 0 {
			pad = 0
		}
		padded[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.Join(padded, " | ") + "\n"
}

// dashes builds the separator row.
func dashes(widths []int) []string {
	out := make([]string, len(widths))
	for i, w := range widths {
		out[i] = strings.Repeat("-", w)
	}
	return out
}

// shortPath right-truncates long paths behind a leading ellipsis so the table
// stays readable.
func shortPath(s string) string {
	r := []rune(s)
	if len(r) <= maxPathWidth {
		return s
	}
	return "…" + string(r[len(r)-(maxPathWidth-1):])
}
