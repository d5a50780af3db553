package document

import (
	"strings"
	"testing"
)

func TestReadabilityScore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty text", "", 100},
		{"single heading", "# Title\nbody", 100},
		{"bonus clamps at 100", "# A\n\n## B\n\nshort text", 100},
		{"no headings over fifty words", strings.Repeat("word ", 51), 85},
		{"long paragraph and no headings", strings.Repeat("word ", 120), 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReadabilityScore(tc.input); got != tc.want {
				t.Errorf("ReadabilityScore = %d, want %d", got, tc.want)
			}
		})
	}
}

// The scoring model checks avg > 100 before avg > 150, so the heavier
// penalty can never apply. This pins that quirk down.
func TestReadabilityShadowedPenalty(t *testing.T) {
	input := "# T\n\n" + strings.Repeat("word ", 400)

	// Two paragraphs, 402 words: average 201. Only the -10 arm fires.
	if got := ReadabilityScore(input); got != 90 {
		t.Errorf("ReadabilityScore = %d, want 90 (the >150 arm must stay shadowed)", got)
	}
}

func TestReadabilityClamped(t *testing.T) {
	inputs := []string{
		"",
		"# A\n\n## B",
		strings.Repeat("word ", 500),
		"# A\n\n## B\n\n" + strings.Repeat("word ", 500),
	}

	for _, input := range inputs {
		got := ReadabilityScore(input)
		if got < 0 || got > 100 {
			t.Errorf("ReadabilityScore = %d, want within [0, 100]", got)
		}
	}
}

func TestStructureQuality(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", StructureNone},
		{"prose only", "plain text, nothing else", StructureNone},
		{"two h1s", "# A\n# B", StructureManyH1},
		{"h1 with h2", "# A\n## B", StructureExcellent},
		{"single h1 only", "# A", StructureGood},
		{"h2 and h3 without h1", "## only\n### deeper", StructureGood},
		{"multiple h1 wins over h2 presence", "# A\n# B\n## C", StructureManyH1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StructureQuality(tc.input); got != tc.want {
				t.Errorf("StructureQuality(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
