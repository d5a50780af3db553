package render

import (
	"strings"
	"testing"

	"github.com/awrigley/markwright/internal/document"
	"github.com/awrigley/markwright/internal/theme"
)

func TestStatsPanelContent(t *testing.T) {
	text := "# Title\n\nSome **bold** and _italic_ text with a [link](http://x.com).\n\n```\ncode\n```\n"
	m := document.Analyze(text)

	s := testStyles(t, theme.Light())
	panel := StripANSI(s.StatsPanel(m, 80))

	wants := []string{
		"Document Statistics",
		"Words:",
		"12",
		"Characters:",
		"Lines:",
		"Reading time:",
		"1 min",
		"Document Structure",
		"Headings:",
		"1 (H1: 1)",
		"Links:",
		"Code blocks:",
		"Quality Analysis",
		"Readability:",
		"100/100",
		"Structure:",
		document.StructureGood,
		"Potential Issues",
		"• " + document.NoIssues,
	}
	for _, want := range wants {
		if !strings.Contains(panel, want) {
			t.Errorf("panel missing %q\n%s", want, panel)
		}
	}
}

func TestStatsPanelQualityColors(t *testing.T) {
	s := testStyles(t, theme.Dark())

	// A single 120-word paragraph with no headings: readability
	// lands at 75 and structure reports no headings at all.
	text := strings.TrimSpace(strings.Repeat("word ", 120))
	m := document.Analyze(text)
	if m.Readability != 75 {
		t.Fatalf("readability = %d, want 75", m.Readability)
	}
	if m.Structure != document.StructureNone {
		t.Fatalf("structure = %q", m.Structure)
	}

	panel := s.StatsPanel(m, 80)
	// Warn color #d29922 for the mid-range readability score.
	if !strings.Contains(panel, "38;2;210;153;34") {
		t.Errorf("expected warn color for readability 75")
	}
	// Bad color #f85149 for missing structure.
	if !strings.Contains(panel, "38;2;248;81;73") {
		t.Errorf("expected bad color for structure %q", m.Structure)
	}

	// A healthy document gets the positive color #3fb950.
	m = document.Analyze("# Title\n\n## Section\n\nBody text.")
	panel = s.StatsPanel(m, 80)
	if !strings.Contains(panel, "38;2;63;185;80") {
		t.Errorf("expected good color for readability %d", m.Readability)
	}
}

func TestStatsPanelListsIssues(t *testing.T) {
	text := "# Same\n\n# Same\n\nAn [empty]( ) link."
	m := document.Analyze(text)

	s := testStyles(t, theme.Light())
	panel := StripANSI(s.StatsPanel(m, 80))

	if !strings.Contains(panel, "• 1 empty link(s)") {
		t.Errorf("empty link issue missing:\n%s", panel)
	}
	if !strings.Contains(panel, "• 1 duplicate heading(s)") {
		t.Errorf("duplicate heading issue missing:\n%s", panel)
	}
	if strings.Contains(panel, document.NoIssues) {
		t.Errorf("clean verdict shown alongside issues:\n%s", panel)
	}
}

func TestFormatHeadings(t *testing.T) {
	tests := []struct {
		name string
		h    document.HeadingCounts
		want string
	}{
		{"none", document.HeadingCounts{}, "0"},
		{"single level", document.HeadingCounts{H3: 1}, "1 (H3: 1)"},
		{"mixed", document.HeadingCounts{H1: 1, H2: 3}, "4 (H1: 1, H2: 3)"},
		{"all levels", document.HeadingCounts{H1: 1, H2: 1, H3: 1, H4: 1, H5: 1, H6: 1}, "6 (H1: 1, H2: 1, H3: 1, H4: 1, H5: 1, H6: 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatHeadings(tt.h); got != tt.want {
				t.Errorf("formatHeadings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate(hello, 10) = %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello w…" {
		t.Errorf("Truncate(hello world, 8) = %q", got)
	}
}
