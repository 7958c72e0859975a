package ollama

import (
	"regexp"
	"strings"
)

// completeOutfitKeywords mark an item as a full outfit that needs no bottom.
var completeOutfitKeywords = []string{
	"saree", "sari", "set", "lehenga", "anarkali", "sharara",
	"suit", "chudi", "salwar", "dress", "gown", "frock", "maxi",
}

var (
	topLineRe    = regexp.MustCompile(`(?i)Top:\s*(.+)`)
	bottomLineRe = regexp.MustCompile(`(?i)Bottom:\s*(.+)`)
)

// fixCompleteOutfitBottom repairs the model's common category-placement
// mistakes before the narrative is returned:
//  1. a dress/saree placed in Bottom is moved to Top when Top is empty
//  2. Bottom holding a complete outfit is reset to "None needed"
//  3. Top holding a complete outfit forces Bottom to "None needed"
//  4. Top is never left as "None needed"
func fixCompleteOutfitBottom(narrative string) string {
	topItem := firstMatch(topLineRe, narrative)
	bottomItem := firstMatch(bottomLineRe, narrative)

	topLower := strings.ToLower(strings.TrimSpace(topItem))
	bottomLower := strings.ToLower(strings.TrimSpace(bottomItem))

	topMissing := topLower == "" || topLower == "none" || topLower == "none needed"

	if isCompleteOutfit(bottomLower) {
		if topMissing {
			// Swap: the complete outfit belongs in Top.
			narrative = topLineRe.ReplaceAllString(narrative, "Top: "+bottomItem)
		}
		narrative = bottomLineRe.ReplaceAllString(narrative, "Bottom: None needed")
		return narrative
	}

	if isCompleteOutfit(topLower) {
		narrative = bottomLineRe.ReplaceAllString(narrative, "Bottom: None needed")
	}

	if topMissing {
		narrative = topLineRe.ReplaceAllString(narrative, "Top: (Please select a top item)")
	}

	return narrative
}

func isCompleteOutfit(item string) bool {
	for _, kw := range completeOutfitKeywords {
		if strings.Contains(item, kw) {
			return true
		}
	}
	return false
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
