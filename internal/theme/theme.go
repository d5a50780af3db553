// Package theme defines the color palettes shared by the terminal
// highlighter, the statistics panel, and the HTML preview. A theme is
// plain data: the render and preview packages decide how to apply it.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/awrigley/markwright/internal/syntax"
)

// Style describes how one syntax category is drawn in the terminal.
// Empty colors leave the terminal default in place.
type Style struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Bold       bool
	Italic     bool
}

// Theme carries every color the tool needs. Terminal colors are
// lipgloss values; the preview palette keeps the raw CSS strings the
// HTML template interpolates.
type Theme struct {
	Name string
	Dark bool

	// Terminal chrome
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Selection lipgloss.Color

	// Quality indicators for the analysis panel
	Good lipgloss.Color
	Warn lipgloss.Color
	Bad  lipgloss.Color

	// Diff line tints
	DiffAddBg    lipgloss.Color
	DiffRemoveBg lipgloss.Color

	// Preview page palette (CSS values)
	BodyBg     string
	BodyFg     string
	PageBorder string
	PageMuted  string
	PageLink   string
	CodeBg     string

	// ChromaStyle names the registered chroma style used for fenced
	// code blocks in HTML output.
	ChromaStyle string

	// Syntax maps classifier categories to terminal styles. Span
	// geometry never depends on the theme, only the colors do.
	Syntax map[syntax.Category]Style
}

// Light is the default palette, tuned for light terminal backgrounds.
func Light() *Theme {
	return &Theme{
		Name: "light",
		Dark: false,

		Text:      lipgloss.Color("#333333"),
		Muted:     lipgloss.Color("#6a737d"),
		Border:    lipgloss.Color("#d0d7de"),
		Selection: lipgloss.Color("#0078d4"),

		Good: lipgloss.Color("#1a7f37"),
		Warn: lipgloss.Color("#9a6700"),
		Bad:  lipgloss.Color("#cf222e"),

		DiffAddBg:    lipgloss.Color("#e6ffec"),
		DiffRemoveBg: lipgloss.Color("#ffebe9"),

		BodyBg:     "#fff",
		BodyFg:     "#333",
		PageBorder: "#eaecef",
		PageMuted:  "#6a737d",
		PageLink:   "#0366d6",
		CodeBg:     "#f6f8fa",

		ChromaStyle: "github",

		Syntax: map[syntax.Category]Style{
			syntax.Heading:        {Foreground: "#0b4f9c", Bold: true},
			syntax.Blockquote:     {Foreground: "#6a737d"},
			syntax.ListMarker:     {Foreground: "#6a737d", Bold: true},
			syntax.HorizontalRule: {Foreground: "#d0d7de"},
			syntax.Bold:           {Bold: true},
			syntax.Italic:         {Italic: true},
			syntax.InlineCode:     {Foreground: "#0969da", Background: "#f6f8fa"},
			syntax.LinkText:       {Foreground: "#0969da"},
			syntax.LinkURL:        {Foreground: "#1a7f37"},
			syntax.CodeFence:      {Foreground: "#24292f", Background: "#f6f8fa"},
		},
	}
}

// Dark is the palette for dark terminal backgrounds.
func Dark() *Theme {
	return &Theme{
		Name: "dark",
		Dark: true,

		Text:      lipgloss.Color("#c9d1d9"),
		Muted:     lipgloss.Color("#8b949e"),
		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#2f81f7"),

		Good: lipgloss.Color("#3fb950"),
		Warn: lipgloss.Color("#d29922"),
		Bad:  lipgloss.Color("#f85149"),

		DiffAddBg:    lipgloss.Color("#1e3c1e"),
		DiffRemoveBg: lipgloss.Color("#3c1e1e"),

		BodyBg:     "#0d1117",
		BodyFg:     "#c9d1d9",
		PageBorder: "#30363d",
		PageMuted:  "#8b949e",
		PageLink:   "#2f81f7",
		CodeBg:     "#161b22",

		ChromaStyle: "monokai",

		Syntax: map[syntax.Category]Style{
			syntax.Heading:        {Foreground: "#2f81f7", Bold: true},
			syntax.Blockquote:     {Foreground: "#8b949e"},
			syntax.ListMarker:     {Foreground: "#8b949e", Bold: true},
			syntax.HorizontalRule: {Foreground: "#30363d"},
			syntax.Bold:           {Bold: true},
			syntax.Italic:         {Italic: true},
			syntax.InlineCode:     {Foreground: "#c9d1d9", Background: "#161b22"},
			syntax.LinkText:       {Foreground: "#2f81f7"},
			syntax.LinkURL:        {Foreground: "#3fb950"},
			syntax.CodeFence:      {Foreground: "#c9d1d9", Background: "#161b22"},
		},
	}
}

// Names lists the selectable themes in display order. "auto" is a
// config value, not a theme, so it is not listed here.
func Names() []string {
	return []string{"light", "dark"}
}

// ByName returns the named theme, or nil if the name is unknown.
func ByName(name string) *Theme {
	switch name {
	case "light":
		return Light()
	case "dark":
		return Dark()
	}
	return nil
}

// Resolve maps a configured theme name to a concrete theme. "auto"
// and unknown names follow the terminal background.
func Resolve(name string) *Theme {
	if t := ByName(name); t != nil {
		return t
	}
	if termenv.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

var currentTheme = Light()

// Get returns the active theme.
func Get() *Theme {
	return currentTheme
}

// Set replaces the active theme.
func Set(t *Theme) {
	if t != nil {
		currentTheme = t
	}
}

// Init resolves the configured theme name and makes it active.
func Init(name string) {
	Set(Resolve(name))
}
