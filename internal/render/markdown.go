package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/awrigley/markwright/internal/syntax"
	"github.com/awrigley/markwright/internal/theme"
)

// Markdown renders markdown for direct terminal display using a
// glamour style derived from the theme.
func Markdown(content string, t *theme.Theme, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(GlamourStyle(t)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	result := strings.TrimSpace(rendered)
	if result != "" && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return wordwrap.String(result, width), nil
}

// GlamourStyle builds a glamour StyleConfig from the theme so the
// terminal preview matches the editor palette.
func GlamourStyle(t *theme.Theme) ansi.StyleConfig {
	text := string(t.Text)
	muted := string(t.Muted)
	good := string(t.Good)
	warn := string(t.Warn)
	bad := string(t.Bad)
	heading := string(t.Syntax[syntax.Heading].Foreground)
	link := string(t.Syntax[syntax.LinkURL].Foreground)
	linkText := string(t.Syntax[syntax.LinkText].Foreground)
	code := string(t.Syntax[syntax.InlineCode].Foreground)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
				Color:       &text,
			},
			Margin: uintPtr(2),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  &muted,
				Italic: boolPtr(true),
			},
			Indent: uintPtr(2),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				Color:       &heading,
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "# ",
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
			},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "### ",
			},
		},
		H4: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "#### ",
			},
		},
		H5: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "##### ",
			},
		},
		H6: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "###### ",
			},
		},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  &muted,
			Format: "\n--------\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
			Color:       &muted,
		},
		Task: ansi.StyleTask{
			Ticked:   "[✓] ",
			Unticked: "[ ] ",
		},
		Link: ansi.StylePrimitive{
			Color:     &link,
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: &linkText,
		},
		Image: ansi.StylePrimitive{
			Color:     &link,
			Underline: boolPtr(true),
		},
		ImageText: ansi.StylePrimitive{
			Color:  &muted,
			Format: "Image: {{.text}}",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &code,
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
				Margin: uintPtr(2),
			},
			Chroma: &ansi.Chroma{
				Text: ansi.StylePrimitive{
					Color: &text,
				},
				Error: ansi.StylePrimitive{
					Color: &bad,
				},
				Comment: ansi.StylePrimitive{
					Color: &muted,
				},
				CommentPreproc: ansi.StylePrimitive{
					Color: &muted,
				},
				Keyword: ansi.StylePrimitive{
					Color: &heading,
				},
				KeywordReserved: ansi.StylePrimitive{
					Color: &heading,
				},
				KeywordNamespace: ansi.StylePrimitive{
					Color: &heading,
				},
				KeywordType: ansi.StylePrimitive{
					Color: &linkText,
				},
				Operator: ansi.StylePrimitive{
					Color: &text,
				},
				Punctuation: ansi.StylePrimitive{
					Color: &text,
				},
				Name: ansi.StylePrimitive{
					Color: &text,
				},
				NameBuiltin: ansi.StylePrimitive{
					Color: &linkText,
				},
				NameTag: ansi.StylePrimitive{
					Color: &heading,
				},
				NameAttribute: ansi.StylePrimitive{
					Color: &good,
				},
				NameClass: ansi.StylePrimitive{
					Color: &linkText,
				},
				NameConstant: ansi.StylePrimitive{
					Color: &linkText,
				},
				NameDecorator: ansi.StylePrimitive{
					Color: &good,
				},
				NameFunction: ansi.StylePrimitive{
					Color: &good,
				},
				LiteralNumber: ansi.StylePrimitive{
					Color: &linkText,
				},
				LiteralString: ansi.StylePrimitive{
					Color: &warn,
				},
				LiteralStringEscape: ansi.StylePrimitive{
					Color: &heading,
				},
				GenericDeleted: ansi.StylePrimitive{
					Color: &bad,
				},
				GenericEmph: ansi.StylePrimitive{
					Italic: boolPtr(true),
				},
				GenericInserted: ansi.StylePrimitive{
					Color: &good,
				},
				GenericStrong: ansi.StylePrimitive{
					Bold: boolPtr(true),
				},
				GenericSubheading: ansi.StylePrimitive{
					Color: &muted,
				},
			},
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func uintPtr(v uint) *uint {
	return &v
}
