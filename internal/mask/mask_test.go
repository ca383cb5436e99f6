package mask

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"long value keeps last 4", "sk-abc123xyz", "****3xyz"},
		{"exactly 5 chars", "12345", "****2345"},
		{"short value leaks in full", "abcd", "****abcd"},
		{"single char", "x", "****x"},
		{"empty value", "", "****"},
		{"true passes through", "true", "true"},
		{"false passes through", "false", "false"},
		{"mixed-case boolean lowercased", "TRUE", "true"},
		{"mixed-case false lowercased", "FaLsE", "false"},
		{"truthy word is not boolean", "truely", "****uely"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.value); got != tt.want {
				t.Errorf("Summarize(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// Property: for values longer than 4 runes, exactly the last 4 are preserved
// and nothing more; for shorter values the full value round-trips after the
// mask token.
func TestSummarize_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	notBoolean := func(s string) bool {
		lower := strings.ToLower(s)
		return lower != "true" && lower != "false"
	}

	properties.Property("long values preserve exactly the last 4 runes", prop.ForAll(
		func(s string) bool {
			r := []rune(s)
			if len(r) <= 4 || !notBoolean(s) {
				return true
			}
			return Summarize(s) == "****"+string(r[len(r)-4:])
		},
		gen.AnyString(),
	))

	properties.Property("short values round-trip after the mask token", prop.ForAll(
		func(s string) bool {
			if len([]rune(s)) > 4 || !notBoolean(s) {
				return true
			}
			return Summarize(s) == "****"+s
		},
		gen.AnyString(),
	))

	properties.Property("non-boolean output always starts with the mask token", prop.ForAll(
		func(s string) bool {
			if !notBoolean(s) {
				return true
			}
			return strings.HasPrefix(Summarize(s), "****")
		},
		gen.AnyString(),
	))

	properties.Property("masking is deterministic", prop.ForAll(
		func(s string) bool {
			return Summarize(s) == Summarize(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
