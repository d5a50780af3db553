package mdfmt

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text untouched", "just some prose", "just some prose"},
		{"tight heading gets space", "#Title", "# Title"},
		{"heading gets blank line before", "text\n# Head", "text\n\n# Head"},
		{"heading after blank keeps single blank", "text\n\n# Head", "text\n\n# Head"},
		{"first-line heading gets no blank", "# First\ntext", "# First\ntext"},
		{"consecutive tight headings", "#a\n#b", "# a\n\n# b"},
		{"indented tight heading loses indent", "   #x", "# x"},
		{"seven hashes pass through", "####### seven", "####### seven"},
		{"seven tight hashes pass through", "#######seven", "#######seven"},
		{"spaced heading with hash content untouched", "### #x", "### #x"},
		{"tight bullet", "-item", "- item"},
		{"tight bullet keeps indent", "  *x", "  * x"},
		{"tight plus marker", "+z", "+ z"},
		{"bullet content trimmed", "-x   ", "- x"},
		{"tight ordered marker", "1.x", "1. x"},
		{"ordered keeps indent", "  12.y", "  12. y"},
		{"spaced markers untouched", "- fine\n1. also fine", "- fine\n1. also fine"},
		{"blank runs collapse", "a\n\n\n\nb", "a\n\nb"},
		{"whitespace-only line becomes blank", "a\n   \nb", "a\n\nb"},
		{"trailing blanks stripped", "a\n\n\n", "a"},
		{"only blanks", "\n\n\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.input); got != tc.want {
				t.Errorf("Format(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// A rule line is anything whose first non-space byte looks like a list
// marker, so a horizontal rule or emphasis-led line gains a space after
// its first byte. The rewrite is stable: a second pass leaves it alone.
func TestFormatMarkerLookalikes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"---", "- --"},
		{"***", "* **"},
		{"*emphasis*", "* emphasis*"},
	}

	for _, tc := range tests {
		got := Format(tc.input)
		if got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.input, got, tc.want)
		}
		if again := Format(got); again != got {
			t.Errorf("Format(Format(%q)) = %q, want %q", tc.input, again, got)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	fixtures := []string{
		"",
		"# Title\n\nSome text.",
		"#Tight\nword\n-item\n1.num\n\n\n\nend\n\n\n",
		"## ok\n\n\n## next",
		"text\n#Head\nmore\n#Again",
		"- a\n-b\n  -c\n    1.d",
		"> quote\n```\ncode\n```\nplain",
		"####### deep\n#\n# ok",
		"   #x\n\n*star*\n---\n",
	}

	for _, input := range fixtures {
		once := Format(input)
		twice := Format(once)
		if once != twice {
			t.Errorf("Format not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestFormatBareHashPassesThrough(t *testing.T) {
	// A lone '#' is heading-led for the blank-line rule but fails the
	// collapse pattern, so the raw line is kept.
	got := Format("text\n#")
	want := "text\n\n#"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
