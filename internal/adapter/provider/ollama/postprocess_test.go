package ollama

import (
	"strings"
	"testing"
)

func TestFixCompleteOutfitBottom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantTop string
		wantBtm string
	}{
		{
			name:    "standalone top untouched",
			input:   "Top: white shirt\nBottom: blue jeans",
			wantTop: "Top: white shirt",
			wantBtm: "Bottom: blue jeans",
		},
		{
			name:    "saree in bottom swapped into empty top",
			input:   "Top: None\nBottom: red silk saree",
			wantTop: "Top: red silk saree",
			wantBtm: "Bottom: None needed",
		},
		{
			name:    "dress in bottom with top present keeps top",
			input:   "Top: white shirt\nBottom: floral maxi dress",
			wantTop: "Top: white shirt",
			wantBtm: "Bottom: None needed",
		},
		{
			name:    "complete outfit in top forces bottom to none needed",
			input:   "Top: green anarkali set\nBottom: blue jeans",
			wantTop: "Top: green anarkali set",
			wantBtm: "Bottom: None needed",
		},
		{
			name:    "empty top without complete outfit gets placeholder",
			input:   "Top: None needed\nBottom: blue jeans",
			wantTop: "Top: (Please select a top item)",
			wantBtm: "Bottom: blue jeans",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixCompleteOutfitBottom(tt.input)
			if !strings.Contains(got, tt.wantTop) {
				t.Errorf("missing %q in:\n%s", tt.wantTop, got)
			}
			if !strings.Contains(got, tt.wantBtm) {
				t.Errorf("missing %q in:\n%s", tt.wantBtm, got)
			}
		})
	}
}

func TestMatchOccasion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"beach day with friends", "beach"},
		{"important client MEETING tomorrow", "formal"},
		{"cousin's wedding reception", "wedding"},
		{"temple visit for pongal", "traditional"},
		{"morning yoga session", "gym"},
		{"going for a run", "gym"},
		{"quick brunch", "casual"},
		{"brunch, then errands!", "casual"},
		{"big night out downtown", "party"},
		{"no keyword at all", "casual"},
	}

	for _, tt := range tests {
		if got := matchOccasion(tt.input); got.Name != tt.want {
			t.Errorf("matchOccasion(%q) = %q, want %q", tt.input, got.Name, tt.want)
		}
	}
}
