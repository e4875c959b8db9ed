// Package validation provides field-level checks for career entry drafts and profiles.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to a human-readable message.
// It satisfies error so callers can block a submission by returning it.
type FieldErrors map[string]string

// Keys returns the offending field names in sorted order
func (fe FieldErrors) Keys() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Valid reports whether no violations were recorded
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, k := range fe.Keys() {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, k, fe[k]))
	}
	return sb.String()
}
