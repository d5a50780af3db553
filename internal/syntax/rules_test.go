package syntax

import (
	"slices"
	"testing"
)

func TestClassifyLineRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Span
	}{
		{"empty line", "", nil},
		{"plain text", "nothing special", nil},
		{"heading", "# Title", []Span{{0, 7, Heading}}},
		{"indented heading", "   ## Sub", []Span{{0, 9, Heading}}},
		{"seven hashes are plain", "####### x", nil},
		{"hashes without space are plain", "#tight", nil},
		{"blockquote", "> quoted", []Span{{0, 8, Blockquote}}},
		{"unordered marker", "- item", []Span{{0, 2, ListMarker}}},
		{"ordered marker", "12. item", []Span{{0, 4, ListMarker}}},
		{"horizontal rule", "---", []Span{{0, 3, HorizontalRule}}},
		{"star rule with trailing space", "*****  ", []Span{{0, 7, HorizontalRule}}},
		{"bold stars", "**bold**", []Span{{0, 8, Bold}}},
		{"bold underscores", "__bold__", []Span{{0, 8, Bold}}},
		{"italic star", "a *i* b", []Span{{2, 3, Italic}}},
		{"italic underscore", "a _i_ b", []Span{{2, 3, Italic}}},
		{"inline code", "run `go vet` now", []Span{{4, 8, InlineCode}}},
		{"link pair", "[a](b)", []Span{{0, 3, LinkText}, {3, 3, LinkURL}}},
		{"bracket without paren", "[a] b", nil},
		{"url with space is plain", "(two words)", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spans, state := ClassifyLine(tc.line, Normal)
			if state != Normal {
				t.Fatalf("state = %v, want Normal", state)
			}
			if !slices.Equal(spans, tc.want) {
				t.Errorf("ClassifyLine(%q) = %v, want %v", tc.line, spans, tc.want)
			}
		})
	}
}

// The single-delimiter rules must not fire on the delimiters of the
// double forms, matching lookaround behavior without lookarounds.
func TestEmphasisGuards(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Span
	}{
		{"bold only", "**x**", []Span{{0, 6, Bold}}},
		{"triple stars", "***x***", []Span{{1, 5, Bold}}},
		{"two italics", "*a* *b*", []Span{{0, 3, Italic}, {4, 3, Italic}}},
		{"underscore run", "a_b_c_d", []Span{{1, 3, Italic}}},
		{"dangling double open", "__x_", nil},
		{"dangling double close", "_x__", nil},
		{"bold then italic", "**b** *i*", []Span{{0, 5, Bold}, {6, 3, Italic}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spans, _ := ClassifyLine(tc.line, Normal)
			if !slices.Equal(spans, tc.want) {
				t.Errorf("ClassifyLine(%q) = %v, want %v", tc.line, spans, tc.want)
			}
		})
	}
}

func TestLinkTextNeedsParen(t *testing.T) {
	spans, _ := ClassifyLine("[a] [b](c)", Normal)

	want := []Span{{4, 3, LinkText}, {7, 3, LinkURL}}
	if !slices.Equal(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

// Every rule runs on every line, so constructs inside a heading line
// produce their own spans on top of the heading span. Later spans win
// repainting; they are never merged.
func TestOverlappingSpans(t *testing.T) {
	spans, _ := ClassifyLine("# A **b**", Normal)

	want := []Span{{0, 9, Heading}, {4, 5, Bold}}
	if !slices.Equal(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}

func TestSpanOffsetsAreBytes(t *testing.T) {
	// é is two bytes; the italic span starts at byte 4, not rune 3.
	spans, _ := ClassifyLine("aé *i*", Normal)

	want := []Span{{4, 3, Italic}}
	if !slices.Equal(spans, want) {
		t.Errorf("spans = %v, want %v", spans, want)
	}
}
