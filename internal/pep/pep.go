// Package pep parses dependency declarations ("name<specifier>") and
// evaluates version specifiers with the <,<=,==,!=,>=,>,~= operator set,
// comma meaning AND. Anything it cannot parse degrades to an unparsed
// classification instead of an error, so one bad declaration never blocks a
// batch.
package pep

import (
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Kind classifies a requirement's specifier.
type Kind string

const (
	KindAny      Kind = "any"      // no specifier: presence alone satisfies
	KindUnparsed Kind = "unparsed" // declaration did not parse: presence alone satisfies
	KindRange    Kind = "range"    // comparison specifier to evaluate
)

// Display strings for the non-range kinds, matching the report convention.
const (
	DisplayAny      = "(any)"
	DisplayUnparsed = "(unparsed)"
)

// Requirement is one parsed dependency declaration.
type Requirement struct {
	Name string
	Spec string // specifier text for KindRange, otherwise a display token
	Kind Kind
}

var (
	nameRe   = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(\[[^\]]*\])?\s*(.*)$`)
	clauseRe = regexp.MustCompile(`^(~=|==|!=|<=|>=|<|>)\s*(\S+)$`)
)

// ParseRequirement splits a declaration into name and specifier. Environment
// markers (after ";") are ignored. A declaration that does not parse keeps
// its full text as the name and degrades to KindUnparsed.
func ParseRequirement(decl string) Requirement {
	text, _, _ := strings.Cut(decl, ";")
	text = strings.TrimSpace(text)

	m := nameRe.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return Requirement{Name: strings.TrimSpace(decl), Spec: DisplayUnparsed, Kind: KindUnparsed}
	}
	name, rest := m[1], strings.TrimSpace(m[3])
	rest = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
	rest = strings.TrimSpace(rest)

	if rest == "" {
		return Requirement{Name: name, Spec: DisplayAny, Kind: KindAny}
	}

	spec, ok := normalizeSpecifier(rest)
	if !ok {
		return Requirement{Name: strings.TrimSpace(decl), Spec: DisplayUnparsed, Kind: KindUnparsed}
	}
	return Requirement{Name: name, Spec: spec, Kind: KindRange}
}

// normalizeSpecifier validates each comma-separated clause and returns the
// specifier with uniform spacing.
func normalizeSpecifier(spec string) (string, bool) {
	var clauses []string
	for _, clause := range strings.Split(spec, ",") {
		m := clauseRe.FindStringSubmatch(strings.TrimSpace(clause))
		if m == nil {
			return "", false
		}
		clauses = append(clauses, m[1]+m[2])
	}
	return strings.Join(clauses, ","), true
}

// Satisfies evaluates a version against a specifier. All clauses must hold.
// It returns an error when the specifier or the version fall outside what the
// constraint engine understands; callers decide how that degrades.
func Satisfies(spec, installed string) (bool, error) {
	constraint, err := toConstraint(spec)
	if err != nil {
		return false, err
	}
	v, err := goversion.NewVersion(installed)
	if err != nil {
		return false, fmt.Errorf("unparsable version %q: %w", installed, err)
	}
	return constraint.Check(v), nil
}

// ParseableVersion reports whether the constraint engine can parse a version
// string at all.
func ParseableVersion(v string) bool {
	_, err := goversion.NewVersion(v)
	return err == nil
}

// toConstraint rewrites a specifier into the constraint engine's syntax:
// "~=" becomes the pessimistic operator and "==X.Y.*" wildcard pins become
// "~> X.Y".
func toConstraint(spec string) (goversion.Constraints, error) {
	var parts []string
	for _, clause := range strings.Split(spec, ",") {
		clause = strings.TrimSpace(clause)
		m := clauseRe.FindStringSubmatch(clause)
		if m == nil {
			return nil, fmt.Errorf("unparsable specifier clause %q", clause)
		}
		op, ver := m[1], m[2]
		switch {
		case op == "~=":
			op = "~>"
		case strings.HasSuffix(ver, ".*"):
			if op != "==" {
				return nil, fmt.Errorf("unsupported wildcard clause %q", clause)
			}
			op, ver = "~>", strings.TrimSuffix(ver, ".*")
		}
		parts = append(parts, op+" "+ver)
	}
	return goversion.NewConstraint(strings.Join(parts, ", "))
}
