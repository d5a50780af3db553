package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/awrigley/markwright/internal/document"
)

// Readability thresholds for the quality colors.
const (
	readabilityGood = 80
	readabilityWarn = 60
)

// StatsPanel renders the full analysis report as bordered sections:
// raw statistics, structure counts, quality scores, and issues.
func (s *Styles) StatsPanel(m document.Metrics, width int) string {
	if width <= 0 {
		width = 80
	}
	inner := width - 4 // borders and padding
	if inner < 20 {
		inner = 20
	}

	sections := []string{
		s.section("Document Statistics", s.rows([][2]string{
			{"Words", strconv.Itoa(m.WordCount)},
			{"Characters", strconv.Itoa(m.CharCount)},
			{"Lines", strconv.Itoa(m.LineCount)},
			{"Reading time", fmt.Sprintf("%d min", m.ReadingTime)},
		}), width),

		s.section("Document Structure", s.rows([][2]string{
			{"Headings", formatHeadings(m.Headings)},
			{"Links", strconv.Itoa(m.LinkCount)},
			{"Images", strconv.Itoa(m.ImageCount)},
			{"Code blocks", strconv.Itoa(m.CodeBlockCount)},
			{"List items", strconv.Itoa(m.ListItemCount)},
			{"Blockquote lines", strconv.Itoa(m.BlockquoteLines)},
			{"Tables", strconv.Itoa(m.TableCount)},
		}), width),

		s.section("Quality Analysis", s.rows([][2]string{
			{"Readability", s.scoreStyle(m.Readability).Render(fmt.Sprintf("%d/100", m.Readability))},
			{"Structure", s.structureStyle(m.Structure).Render(m.Structure)},
		}), width),

		s.section("Potential Issues", s.issueLines(m.Issues, inner), width),
	}

	return strings.Join(sections, "\n")
}

// section wraps a titled body in the theme's border.
func (s *Styles) section(title, body string, width int) string {
	box := s.box
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(s.Title.Render(title) + "\n" + body)
}

// rows aligns label/value pairs into columns. Values may already be
// styled; alignment is computed from the labels alone.
func (s *Styles) rows(pairs [][2]string) string {
	maxLabel := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p[0]); w > maxLabel {
			maxLabel = w
		}
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		pad := strings.Repeat(" ", maxLabel-runewidth.StringWidth(p[0])+1)
		b.WriteString(s.Label.Render(p[0] + ":"))
		b.WriteString(pad)
		b.WriteString(p[1])
	}
	return b.String()
}

// issueLines renders detected issues as wrapped bullets. A clean
// report shows in the positive color, problems in the warning color.
func (s *Styles) issueLines(issues []string, width int) string {
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		bullet := wordwrap.String("• "+issue, width)
		if issue == document.NoIssues {
			lines = append(lines, s.Good.Render(bullet))
		} else {
			lines = append(lines, s.Warn.Render(bullet))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Styles) scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= readabilityGood:
		return s.Good
	case score >= readabilityWarn:
		return s.Warn
	default:
		return s.Bad
	}
}

func (s *Styles) structureStyle(quality string) lipgloss.Style {
	switch quality {
	case document.StructureExcellent:
		return s.Good
	case document.StructureGood:
		return s.Warn
	default:
		return s.Bad
	}
}

// formatHeadings shows the total with a per-level breakdown, e.g.
// "4 (H1: 1, H2: 3)". Levels with no headings are omitted.
func formatHeadings(h document.HeadingCounts) string {
	total := h.Total()
	if total == 0 {
		return "0"
	}
	var parts []string
	for i, n := range h.Levels() {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("H%d: %d", i+1, n))
		}
	}
	return fmt.Sprintf("%d (%s)", total, strings.Join(parts, ", "))
}
