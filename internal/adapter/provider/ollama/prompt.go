package ollama

import (
	"fmt"
	"strings"

	"github.com/closetmate/closetmate/internal/domain"
)

// buildSystemPrompt renders the stylist instruction block: the matched
// occasion, current weather context, the wardrobe grouped into per-category
// lists, and the rules that pin the model to exact item names and the fixed
// "Top:/Bottom:/Shoes:/Accessory:" output format.
func buildSystemPrompt(rule occasionRule, items []domain.WardrobeItem, weather *domain.WeatherSnapshot) string {
	groups := groupWardrobe(rule, items)

	var b strings.Builder

	b.WriteString("You are a Fashion Stylist.\n\n")
	fmt.Fprintf(&b, "OCCASION: %s\n", strings.ToUpper(rule.Name))

	if weather != nil {
		fmt.Fprintf(&b, "\nCURRENT WEATHER in %s: %.0f°C, %s\n", weather.City, weather.TempC, weather.Description)
		if tip := weatherTip(weather); tip != "" {
			fmt.Fprintf(&b, "WEATHER TIP: %s\n", tip)
		}
	}

	b.WriteString("\nWARDROBE - SELECT ONLY FROM THESE LISTS:\n")
	writeList(&b, "TOPS LIST", groups[domain.CategoryTop])
	writeList(&b, "BOTTOMS LIST", groups[domain.CategoryBottom])
	writeList(&b, "DRESSES/SETS LIST", groups[domain.CategoryDress])
	writeList(&b, "SAREES LIST", groups[domain.CategorySaree])
	writeList(&b, "SHOES LIST", groups[domain.CategoryShoes])
	writeList(&b, "ACCESSORIES LIST", groups[domain.CategoryAccessory])
	writeList(&b, "OUTERWEAR LIST", groups[domain.CategoryOuterwear])

	b.WriteString(`
=== ABSOLUTE RULES (MUST FOLLOW) ===

RULE 1 - NO HALLUCINATION:
- Only suggest items that appear EXACTLY in the lists above
- Never invent item names; copy names character for character
- If no suitable item exists in a category, write: "Not available in wardrobe"

RULE 2 - CATEGORY PLACEMENT:
- Top: select from TOPS, DRESSES/SETS, or SAREES lists. Top can never be "None needed"
- Bottom: select from BOTTOMS list or write "None needed". Never put a dress here
- Shoes: only from SHOES list
- Accessory: only from ACCESSORIES list
- A dress or saree always goes in the Top field, never in Bottom

RULE 3 - COMPLETE OUTFIT DETECTION:
If your Top selection is a saree, set, lehenga, suit, dress, or gown,
Bottom MUST be "None needed". If Top is a standalone item, pick a Bottom.

RULE 4 - STYLE GUIDELINES:
`)
	b.WriteString(rule.StyleNotes)
	b.WriteString(`

=== OUTPUT FORMAT (FOLLOW EXACTLY) ===

Overall Outfit Suggestion:
[Two sentences: why this combination works, and why it fits the occasion.]

Top: [EXACT item from TOPS/DRESSES/SAREES list]
Bottom: [EXACT item from BOTTOMS list OR "None needed"]
Shoes: [EXACT item from SHOES list OR "Not available in wardrobe"]
Accessory: [EXACT item from ACCESSORIES list OR "Not available in wardrobe"]

Do not add any text after the Accessory line.`)

	return b.String()
}

// groupWardrobe buckets catalogue items by category, dropping items the
// occasion forbids. Uncategorized items go into the tops bucket so they stay
// selectable.
func groupWardrobe(rule occasionRule, items []domain.WardrobeItem) map[domain.Category][]string {
	groups := make(map[domain.Category][]string)
	for _, item := range items {
		if isForbidden(rule, item) {
			continue
		}
		cat := item.Category
		if cat == domain.CategoryUncategorized {
			cat = domain.CategoryTop
		}
		groups[cat] = append(groups[cat], item.Name)
	}
	return groups
}

// isForbidden checks the occasion's forbidden keywords against the item name
// and category, loosely (substring, case-insensitive).
func isForbidden(rule occasionRule, item domain.WardrobeItem) bool {
	name := strings.ToLower(item.Name)
	cat := strings.ToLower(item.Category.String())

	for _, f := range rule.Forbidden {
		f = strings.ToLower(f)
		if strings.Contains(name, f) || strings.Contains(cat, f) {
			return true
		}
	}
	return false
}

func writeList(b *strings.Builder, title string, names []string) {
	fmt.Fprintf(b, "\n[%s]\n", title)
	if len(names) == 0 {
		b.WriteString("(No items available for this occasion)\n")
		return
	}
	for _, n := range names {
		fmt.Fprintf(b, "- %s\n", n)
	}
}

// weatherTip derives a short packing hint from conditions.
func weatherTip(w *domain.WeatherSnapshot) string {
	var tips []string

	if w.TempC >= 30 {
		tips = append(tips, "It's hot! Suggest light, breathable fabrics.")
	} else if w.TempC <= 15 {
		tips = append(tips, "It's cold! Suggest warm layers.")
	}

	if strings.Contains(strings.ToLower(w.Condition), "rain") {
		tips = append(tips, "It's rainy! Suggest water-resistant items.")
	}

	return strings.Join(tips, " ")
}
