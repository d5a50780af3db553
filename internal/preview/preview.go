// Package preview converts markdown documents into standalone HTML
// pages styled by the active theme.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/awrigley/markwright/internal/theme"
)

// markdown is the shared goldmark instance. Code blocks keep chroma's
// class names so the page stylesheet can restyle them per theme.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Options control page generation.
type Options struct {
	// Title for the HTML document. Empty falls back to "Markdown Preview".
	Title string

	// Theme supplies the page palette. Nil uses the active theme.
	Theme *theme.Theme

	// CSSPath names an optional user stylesheet appended after the
	// generated rules so it can override them.
	CSSPath string
}

// Fragment converts markdown to bare HTML without the page shell.
func Fragment(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Render converts markdown to a complete HTML page: theme palette,
// chroma stylesheet, optional user CSS, and the converted body.
func Render(md string, opts Options) (string, error) {
	t := opts.Theme
	if t == nil {
		t = theme.Get()
	}
	title := opts.Title
	if title == "" {
		title = "Markdown Preview"
	}

	body, err := Fragment(md)
	if err != nil {
		return "", err
	}

	chromaCSS, err := theme.Stylesheet(t)
	if err != nil {
		return "", err
	}

	userCSS, err := UserCSS(opts.CSSPath)
	if err != nil {
		return "", err
	}

	var page strings.Builder
	err = pageTemplate.Execute(&page, pageData{
		Title:     title,
		Theme:     t,
		ChromaCSS: template.CSS(chromaCSS),
		UserCSS:   template.CSS(userCSS),
		Body:      template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return page.String(), nil
}

type pageData struct {
	Title     string
	Theme     *theme.Theme
	ChromaCSS template.CSS
	UserCSS   template.CSS
	Body      template.HTML
}

var pageTemplate = template.Must(template.New("preview").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    line-height: 1.6;
    color: {{.Theme.BodyFg}};
    background-color: {{.Theme.BodyBg}};
    max-width: 860px;
    margin: 0 auto;
    padding: 24px;
}
h1, h2 {
    border-bottom: 1px solid {{.Theme.PageBorder}};
    padding-bottom: 0.3em;
}
blockquote {
    color: {{.Theme.PageMuted}};
    border-left: 4px solid {{.Theme.PageBorder}};
    margin: 0;
    padding: 0 1em;
}
a { color: {{.Theme.PageLink}}; }
code {
    background-color: {{.Theme.CodeBg}};
    padding: 2px 6px;
    border-radius: 3px;
    font-size: 0.9em;
}
pre {
    background-color: {{.Theme.CodeBg}};
    padding: 12px;
    border-radius: 6px;
    overflow-x: auto;
}
pre code {
    background: none;
    padding: 0;
}
table { border-collapse: collapse; }
th, td {
    border: 1px solid {{.Theme.PageBorder}};
    padding: 6px 13px;
}
img { max-width: 100%; }
hr {
    border: none;
    border-top: 2px solid {{.Theme.PageBorder}};
}
{{.ChromaCSS}}
{{.UserCSS}}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`
