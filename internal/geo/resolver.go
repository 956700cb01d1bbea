package geo

import (
	"strings"
)

// Comarca labels carry a "district of" prefix in two capitalization variants.
var comarcaPrefixes = []string{"Comarca de ", "Comarca De "}

// Resolver maps a free-text comarca label to a canonical municipality name.
// The exclusion list is injected configuration so alternate reference sets
// can be substituted in tests.
type Resolver struct {
	exclusions []string
}

// NewResolver creates a resolver with the given tribunal exclusion set.
func NewResolver(exclusions []string) *Resolver {
	return &Resolver{exclusions: exclusions}
}

// Resolve returns the canonical municipality name for a comarca label.
// ok is false when the label is empty or contains any exclusion substring,
// meaning it names a court rather than a municipality.
//
// There is no fuzzy matching or diacritic normalization: the result must
// match a MunicipalityIndex key verbatim for the geo join to succeed.
// Non-matching names are excluded later by the join, which is a known
// precision limitation rather than a defect.
func (r *Resolver) Resolve(label string) (name string, ok bool) {
	if label == "" {
		return "", false
	}
	for _, excl := range r.exclusions {
		if strings.Contains(label, excl) {
			return "", false
		}
	}
	for _, prefix := range comarcaPrefixes {
		if strings.HasPrefix(label, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(label, prefix)), true
		}
	}
	return strings.TrimSpace(label), true
}
