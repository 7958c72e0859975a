package ollama

import (
	"strings"
	"unicode"
)

// occasionRule describes how one occasion constrains outfit selection.
// Forbidden keywords are matched loosely against item names and categories.
type occasionRule struct {
	Name       string
	Keywords   []string
	StyleNotes string
	Forbidden  []string
}

// occasionRules is checked in order; the first keyword hit wins.
// defaultOccasion applies when nothing matches.
var occasionRules = []occasionRule{
	{
		Name:       "beach",
		Keywords:   []string{"beach", "pool", "vacation", "picnic"},
		StyleNotes: "Light, breezy, and sun-friendly. Prefer breathable fabrics like cotton and linen.",
		Forbidden:  []string{"saree", "blazer", "heels", "formal", "velvet"},
	},
	{
		Name:       "formal",
		Keywords:   []string{"formal", "office", "work", "interview", "meeting", "business", "presentation"},
		StyleNotes: "Polished and professional. Prefer structured pieces, muted colors, closed shoes.",
		Forbidden:  []string{"shorts", "crop", "gym", "track", "slipper", "tank"},
	},
	{
		Name:       "party",
		Keywords:   []string{"party", "club", "night out", "birthday", "dinner", "date"},
		StyleNotes: "Statement pieces welcome. Bolder colors, shine, and standout accessories work well.",
		Forbidden:  []string{"gym", "track", "sports"},
	},
	{
		Name:       "wedding",
		Keywords:   []string{"wedding", "reception", "engagement", "sangeet"},
		StyleNotes: "Festive and elegant. Prefer traditional wear, rich fabrics, coordinated jewelry.",
		Forbidden:  []string{"shorts", "t-shirt", "tshirt", "sneaker", "gym", "track"},
	},
	{
		Name:       "traditional",
		Keywords:   []string{"temple", "festival", "diwali", "pongal", "puja", "ethnic"},
		StyleNotes: "Traditional and modest. Sarees, kurtis, and ethnic sets are ideal.",
		Forbidden:  []string{"shorts", "gym", "track", "crop"},
	},
	{
		Name:       "gym",
		Keywords:   []string{"gym", "workout", "yoga", "run", "running", "jog", "jogging", "exercise", "sports"},
		StyleNotes: "Athletic and functional. Prefer stretchy, sweat-friendly pieces and sports shoes.",
		Forbidden:  []string{"saree", "dress", "heels", "formal", "silk"},
	},
}

var defaultOccasion = occasionRule{
	Name:       "casual",
	Keywords:   []string{"casual", "brunch", "shopping", "errand", "hangout"},
	StyleNotes: "Relaxed and comfortable. Easy everyday combinations.",
}

// matchOccasion finds the best matching occasion rule for the user input.
// Keywords match on word boundaries, so a short keyword like "run" cannot
// fire inside a longer word like "brunch".
func matchOccasion(input string) occasionRule {
	words := padWords(input)

	for _, rule := range occasionRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(words, " "+kw+" ") {
				return rule
			}
		}
	}
	for _, kw := range defaultOccasion.Keywords {
		if strings.Contains(words, " "+kw+" ") {
			return defaultOccasion
		}
	}

	return defaultOccasion
}

// padWords lower-cases the input, collapses every non-alphanumeric run to a
// single space and pads the ends, so " kw " probes hit whole words only.
// Multi-word keywords like "night out" still match as phrases.
func padWords(input string) string {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return " " + strings.Join(fields, " ") + " "
}
