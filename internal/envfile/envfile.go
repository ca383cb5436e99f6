// Package envfile parses example/template env files: the ordered key set with
// example values, the "required" comment sections that mark keys mandatory,
// and the manual-installs directive line.
package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DirectivePrefix marks the comment line declaring externally installed tools
// to check. Matching is case-sensitive on the trimmed line.
const DirectivePrefix = "# Manual installs for checking:"

// sectionState tracks which comment section the raw scan is inside.
type sectionState int

const (
	sectionNormal sectionState = iota
	sectionRequired
)

// File is the parsed template: keys in declaration order, dotenv-parsed
// example values, the raw example values of required keys, and the
// manual-installs tool list.
type File struct {
	Keys     []string          // declaration order, duplicates keep first position
	Values   map[string]string // full key set with dotenv-parsed example values
	Required map[string]string // required keys -> raw example value from the scan
	Tools    []string          // manual-installs directive payload, declaration order
}

// Load reads and parses a template file. A missing file is reported via the
// raw os.IsNotExist error so callers can treat it as the optional-file case.
func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, err
		}
		return File{}, fmt.Errorf("failed to read template: %w", err)
	}
	return Parse(string(content)), nil
}

// Parse builds a File from template content.
//
// A single raw-line scan drives the required-section state machine, the
// ordered key list, and the directive extraction, so the two report passes
// can never disagree on how a line splits. Values come from a dotenv parse
// of the same content, which owns quoting and inline-comment stripping; a
// malformed line degrades only itself, never the whole file.
func Parse(content string) File {
	f := File{
		Values:   map[string]string{},
		Required: map[string]string{},
	}

	state := sectionNormal
	haveDirective := false
	raw := map[string]string{}
	var ordered []string

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "#") {
			if !haveDirective && strings.HasPrefix(stripped, DirectivePrefix) {
				// First directive wins; later ones are ignored.
				haveDirective = true
				f.Tools = splitDirective(stripped)
			}
			if strings.Contains(strings.ToLower(stripped), "required") {
				state = sectionRequired
			} else {
				state = sectionNormal
			}
			continue
		}

		key, value, ok := splitKeyValue(stripped)
		if !ok {
			continue
		}
		if state == sectionRequired {
			f.Required[key] = value
		}
		// Duplicate keys keep their first position; the value map makes
		// the last write win.
		if _, seen := raw[key]; !seen {
			ordered = append(ordered, key)
		}
		raw[key] = value
	}

	parsed := dotenvValues(content, raw)
	for _, key := range ordered {
		if value, ok := parsed[key]; ok {
			f.Keys = append(f.Keys, key)
			f.Values[key] = value
		}
	}
	return f
}

// dotenvValues parses example values with the dotenv convention. The parser
// rejects whole files over a single malformed line, so on failure it retries
// with the unparsable lines filtered out, and as a last resort falls back to
// the raw scan's values.
func dotenvValues(content string, raw map[string]string) map[string]string {
	if parsed, err := godotenv.Parse(strings.NewReader(content)); err == nil {
		return parsed
	}

	var kept []string
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			kept = append(kept, line)
			continue
		}
		if _, _, ok := splitKeyValue(stripped); ok {
			kept = append(kept, line)
		}
	}
	if parsed, err := godotenv.Parse(strings.NewReader(strings.Join(kept, "\n"))); err == nil {
		return parsed
	}
	return raw
}

// splitKeyValue splits a non-comment line on its first "=", tolerating the
// "export " prefix the dotenv convention allows.
func splitKeyValue(stripped string) (key, value string, ok bool) {
	if stripped == "" || !strings.Contains(stripped, "=") {
		return "", "", false
	}
	line := strings.TrimPrefix(stripped, "export ")
	key, value, _ = strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// splitDirective extracts the comma-separated payload after the directive's
// first colon, trimming entries and dropping empties.
func splitDirective(stripped string) []string {
	_, payload, _ := strings.Cut(stripped, ":")
	var tools []string
	for _, t := range strings.Split(payload, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tools = append(tools, t)
		}
	}
	return tools
}
