// Package suggestion turns a free-text outfit narrative into wardrobe item
// references. The narrative format is producer-controlled and loosely
// structured, so extraction is a line-scan heuristic: category-labelled lines
// ("Top: ...", "Shoes: ...") anchor candidate item names, which are resolved
// against the catalogue under normalized fuzzy matching.
//
// Matching is a pure function of (narrative, catalogue); it performs no I/O.
package suggestion

import (
	"strings"

	"github.com/closetmate/closetmate/internal/domain"
)

// placeholders the generator emits when a slot has no wardrobe item.
// They are never item names and are skipped before matching.
var placeholders = map[string]struct{}{
	"":                          {},
	"none":                      {},
	"none needed":               {},
	"not available in wardrobe": {},
}

// Match extracts category-labelled item mentions from narrative and resolves
// each to a catalogue entry. For every candidate, exact normalized equality
// wins over substring containment (either direction); within each rule the
// first catalogue entry in iteration order wins. Candidates that match
// nothing are dropped silently. The result is deduplicated by item name,
// keeping first-seen order. A cue-free narrative yields an empty result,
// which is a valid outcome, not an error.
func Match(narrative string, catalogue []domain.WardrobeItem) []domain.WardrobeItem {
	var matched []domain.WardrobeItem
	seen := make(map[string]struct{})

	for _, line := range strings.Split(narrative, "\n") {
		candidate, ok := extractCandidate(line)
		if !ok {
			continue
		}

		item, ok := resolve(candidate, catalogue)
		if !ok {
			continue
		}

		key := domain.NormalizeName(item.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matched = append(matched, item)
	}

	return matched
}

// extractCandidate returns the candidate item name from a category-labelled
// line. Text after the label up to the first parenthesis is the candidate;
// parenthetical annotations are discarded. Returns false for lines without a
// recognized label and for placeholder values.
func extractCandidate(line string) (string, bool) {
	line = strings.TrimSpace(line)

	rest, ok := stripCategoryLabel(line)
	if !ok {
		return "", false
	}

	if i := strings.IndexByte(rest, '('); i >= 0 {
		rest = rest[:i]
	}
	rest = strings.TrimSpace(rest)

	if _, placeholder := placeholders[strings.ToLower(rest)]; placeholder {
		return "", false
	}

	return rest, true
}

// stripCategoryLabel removes a leading "<Category>:" label, case-insensitively.
func stripCategoryLabel(line string) (string, bool) {
	for _, c := range domain.Categories() {
		label := c.String()
		if len(line) <= len(label) {
			continue
		}
		if strings.EqualFold(line[:len(label)], label) && line[len(label)] == ':' {
			return line[len(label)+1:], true
		}
	}
	return "", false
}

// resolve matches one candidate name against the catalogue.
func resolve(candidate string, catalogue []domain.WardrobeItem) (domain.WardrobeItem, bool) {
	norm := domain.NormalizeName(candidate)
	if norm == "" {
		return domain.WardrobeItem{}, false
	}

	for _, item := range catalogue {
		if domain.NormalizeName(item.Name) == norm {
			return item, true
		}
	}

	for _, item := range catalogue {
		itemNorm := domain.NormalizeName(item.Name)
		if itemNorm == "" {
			continue
		}
		if strings.Contains(norm, itemNorm) || strings.Contains(itemNorm, norm) {
			return item, true
		}
	}

	return domain.WardrobeItem{}, false
}
