package mask

import "strings"

// maskToken prefixes every masked value.
const maskToken = "****"

// Summarize returns a display-safe form of a value.
// Boolean-looking values ("true"/"false", any case) pass through lowercased
// and unmasked. Anything longer than 4 characters shows only its last 4.
//
// Values of length <= 4 render as the mask token followed by the FULL value.
// This leaks short values and is intentional: the upstream convention renders
// them this way, and callers depend on the exact output.
func Summarize(value string) string {
	lower := strings.ToLower(value)
	if lower == "true" || lower == "false" {
		return lower
	}
	if r := []rune(value); len(r) > 4 {
		return maskToken + string(r[len(r)-4:])
	}
	return maskToken + value
}
