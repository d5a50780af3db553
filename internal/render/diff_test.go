package render

import (
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/awrigley/markwright/internal/theme"
)

func TestUnifiedDiffMarksChanges(t *testing.T) {
	s := testStyles(t, theme.Dark())

	oldText := "# Title\n\nalpha\nbeta\n"
	newText := "# Title\n\nalpha\ngamma\n"

	out := s.UnifiedDiff("doc.md", oldText, newText)
	if out == "" {
		t.Fatal("expected a diff for changed content")
	}

	if !strings.Contains(out, "\x1b[48;2;60;30;30m") {
		t.Error("expected removed line to carry the red tint")
	}
	if !strings.Contains(out, "\x1b[48;2;30;60;30m") {
		t.Error("expected added line to carry the green tint")
	}

	plain := StripANSI(out)
	if !strings.Contains(plain, "4- beta") {
		t.Errorf("expected removed line with number, got:\n%s", plain)
	}
	if !strings.Contains(plain, "4+ gamma") {
		t.Errorf("expected added line with number, got:\n%s", plain)
	}
	if !strings.Contains(plain, "1  # Title") {
		t.Errorf("expected context line with number, got:\n%s", plain)
	}
	if strings.Contains(plain, "--- ") || strings.Contains(plain, "+++ ") {
		t.Errorf("expected file headers to be dropped, got:\n%s", plain)
	}
}

func TestUnifiedDiffEqualInputs(t *testing.T) {
	s := testStyles(t, theme.Light())
	if out := s.UnifiedDiff("doc.md", "same\n", "same\n"); out != "" {
		t.Errorf("expected empty diff for equal inputs, got %q", out)
	}
}

func TestUnifiedDiffHunkSeparator(t *testing.T) {
	s := testStyles(t, theme.Light())

	var oldB, newB strings.Builder
	for i := 0; i < 30; i++ {
		line := "line\n"
		oldB.WriteString(line)
		newB.WriteString(line)
		if i == 2 {
			newB.WriteString("added early\n")
		}
		if i == 27 {
			newB.WriteString("added late\n")
		}
	}

	out := StripANSI(s.UnifiedDiff("doc.md", oldB.String(), newB.String()))
	if !strings.Contains(out, "...") {
		t.Errorf("expected a separator between distant hunks, got:\n%s", out)
	}
	if !strings.Contains(out, "added early") || !strings.Contains(out, "added late") {
		t.Errorf("expected both insertions in the diff, got:\n%s", out)
	}
}

func TestUnifiedDiffAsciiProfileStaysPlain(t *testing.T) {
	s := NewStyles(theme.Dark(), os.Stdout)
	s.r.SetColorProfile(termenv.Ascii)

	out := s.UnifiedDiff("doc.md", "a\n", "b\n")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape sequences on ascii profile, got %q", out)
	}
}
