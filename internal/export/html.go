package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/awrigley/markwright/internal/preview"
	"github.com/awrigley/markwright/internal/theme"
)

// AsHTML converts markdown to a standalone page. Exports always use
// the light palette so shared documents read well everywhere.
func AsHTML(md string) (string, error) {
	body, err := preview.Fragment(md)
	if err != nil {
		return "", err
	}

	chromaCSS, err := theme.Stylesheet(theme.Light())
	if err != nil {
		return "", err
	}

	var page strings.Builder
	err = exportTemplate.Execute(&page, struct {
		ChromaCSS template.CSS
		Body      template.HTML
	}{
		ChromaCSS: template.CSS(chromaCSS),
		Body:      template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return page.String(), nil
}

var exportTemplate = template.Must(template.New("export").Parse(exportHTML))

const exportHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Exported Markdown Document</title>
    <style>
        {{.ChromaCSS}}
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #fff;
        }
        h1, h2, h3, h4, h5, h6 {
            margin-top: 24px;
            margin-bottom: 16px;
            font-weight: 600;
            line-height: 1.25;
        }
        h1 { font-size: 2em; border-bottom: 1px solid #eaecef; padding-bottom: 0.3em; }
        h2 { font-size: 1.5em; border-bottom: 1px solid #eaecef; padding-bottom: 0.3em; }
        h3 { font-size: 1.25em; }
        h4 { font-size: 1em; }
        h5 { font-size: 0.875em; }
        h6 { font-size: 0.85em; color: #6a737d; }
        p { margin-bottom: 16px; }
        code {
            background-color: #f6f8fa;
            border-radius: 3px;
            font-size: 85%;
            margin: 0;
            padding: 0.2em 0.4em;
        }
        pre {
            background-color: #f6f8fa;
            border-radius: 6px;
            padding: 16px;
            overflow: auto;
            font-size: 85%;
            line-height: 1.45;
        }
        pre code {
            background-color: transparent;
            border: 0;
            display: inline;
            line-height: inherit;
            margin: 0;
            overflow: visible;
            padding: 0;
            word-wrap: normal;
        }
        blockquote {
            border-left: 0.25em solid #dfe2e5;
            color: #6a737d;
            padding: 0 1em;
            margin: 0 0 16px 0;
        }
        table {
            border-spacing: 0;
            border-collapse: collapse;
            margin-bottom: 16px;
        }
        table th, table td {
            border: 1px solid #dfe2e5;
            padding: 6px 13px;
        }
        table th {
            background-color: #f6f8fa;
            font-weight: 600;
        }
        table tr:nth-child(2n) {
            background-color: #f6f8fa;
        }
        ul, ol {
            padding-left: 2em;
            margin-bottom: 16px;
        }
        li {
            margin-bottom: 0.25em;
        }
        a {
            color: #0366d6;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        img {
            max-width: 100%;
            height: auto;
        }
        hr {
            border: none;
            border-top: 1px solid #eaecef;
            height: 1px;
            margin: 24px 0;
        }
    </style>
</head>
<body>
    {{.Body}}
</body>
</html>
`
