package render

import (
	"strings"

	"github.com/awrigley/markwright/internal/syntax"
)

// Highlight repaints markdown text with the theme's syntax colors.
// Fence state carries across lines, so unterminated code blocks stay
// highlighted to the end of the text.
func (s *Styles) Highlight(text string) string {
	lineSpans, _ := syntax.ClassifyDocument(text, syntax.Normal)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = s.paintLine(lines[i], lineSpans[i])
	}
	return strings.Join(lines, "\n")
}

// HighlightLine paints a single line and returns the classifier state
// to feed into the next line.
func (s *Styles) HighlightLine(line string, state syntax.State) (string, syntax.State) {
	spans, next := syntax.ClassifyLine(line, state)
	return s.paintLine(line, spans), next
}

// paintLine applies span styles to a line. Where spans overlap, the
// later span wins, so inline emphasis shows through block styles.
func (s *Styles) paintLine(line string, spans []syntax.Span) string {
	if line == "" || len(spans) == 0 {
		return line
	}

	cats := make([]syntax.Category, len(line))
	for _, sp := range spans {
		end := sp.Start + sp.Len
		if sp.Start < 0 || end > len(line) {
			continue
		}
		for i := sp.Start; i < end; i++ {
			cats[i] = sp.Cat
		}
	}

	// Span boundaries land on rune boundaries, so grouping equal
	// categories never splits a rune.
	var b strings.Builder
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && cats[i] == cats[start] {
			continue
		}
		seg := line[start:i]
		if st, ok := s.syntax[cats[start]]; ok && cats[start] != syntax.Plain {
			b.WriteString(st.Render(seg))
		} else {
			b.WriteString(seg)
		}
		start = i
	}
	return b.String()
}
