package domain

import (
	"strings"
)

// NormalizeName prepares an item name for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses underscores and hyphens into spaces
//   - compresses whitespace runs into a single space
//
// Stored names keep their original casing; normalization is only the
// comparison form.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == '_' || r == '-' || r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
