package export

import (
	"strings"
	"testing"
)

func TestAsHTML(t *testing.T) {
	page, err := AsHTML("# Hi\n\nSome **bold** text with `code`.")
	if err != nil {
		t.Fatalf("AsHTML: %v", err)
	}

	wants := []string{
		"<!DOCTYPE html>",
		"<title>Exported Markdown Document</title>",
		"background-color: #fff;",
		`<h1 id="hi">Hi</h1>`,
		"<strong>bold</strong>",
		"<code>code</code>",
		".chroma",
	}
	for _, want := range wants {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestAsHTMLTable(t *testing.T) {
	page, err := AsHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("AsHTML: %v", err)
	}
	if !strings.Contains(page, "<table>") || !strings.Contains(page, "<td>1</td>") {
		t.Errorf("table not converted:\n%s", page)
	}
}

func TestAsHTMLAlwaysLight(t *testing.T) {
	page, err := AsHTML("text")
	if err != nil {
		t.Fatalf("AsHTML: %v", err)
	}
	if strings.Contains(page, "#0d1117") {
		t.Errorf("export page uses the dark palette")
	}
}
