// Package render turns documents and analysis results into terminal
// output: themed syntax highlighting, the statistics panel, and
// glamour-backed markdown previews.
package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/awrigley/markwright/internal/syntax"
	"github.com/awrigley/markwright/internal/theme"
)

// Styles binds a theme to a terminal. Colors degrade with the
// output's capabilities, so piped output stays plain.
type Styles struct {
	theme  *theme.Theme
	r      *lipgloss.Renderer
	syntax map[syntax.Category]lipgloss.Style

	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style

	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style

	box lipgloss.Style
}

// NewStyles builds styles for the given theme bound to output.
func NewStyles(t *theme.Theme, output *os.File) *Styles {
	r := lipgloss.NewRenderer(output)

	syntaxStyles := make(map[syntax.Category]lipgloss.Style, len(t.Syntax))
	for cat, st := range t.Syntax {
		s := r.NewStyle()
		if st.Foreground != "" {
			s = s.Foreground(st.Foreground)
		}
		if st.Background != "" {
			s = s.Background(st.Background)
		}
		if st.Bold {
			s = s.Bold(true)
		}
		if st.Italic {
			s = s.Italic(true)
		}
		syntaxStyles[cat] = s
	}

	return &Styles{
		theme:  t,
		r:      r,
		syntax: syntaxStyles,

		Title: r.NewStyle().Bold(true).Foreground(t.Text),
		Label: r.NewStyle().Foreground(t.Muted),
		Muted: r.NewStyle().Foreground(t.Muted),
		Good:  r.NewStyle().Foreground(t.Good),
		Warn:  r.NewStyle().Foreground(t.Warn),
		Bad:   r.NewStyle().Foreground(t.Bad),

		DiffAdd:    r.NewStyle().Background(t.DiffAddBg),
		DiffRemove: r.NewStyle().Background(t.DiffRemoveBg),

		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles for the active theme on stdout.
func DefaultStyles() *Styles {
	return NewStyles(theme.Get(), os.Stdout)
}

// Theme returns the theme these styles were built from.
func (s *Styles) Theme() *theme.Theme {
	return s.theme
}

// Truncate shortens s to the given display width, keeping escape
// sequences intact and appending an ellipsis when content is cut.
func Truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// StripANSI removes escape sequences, leaving plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// TerminalWidth returns the stdout width, or 80 when unavailable.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
