package theme

import (
	"strings"
	"testing"

	"github.com/awrigley/markwright/internal/syntax"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"light", "light"},
		{"dark", "dark"},
		{"auto", ""},
		{"solarized", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := ByName(tt.name)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ByName(%q) = %v, want nil", tt.name, got.Name)
			}
			continue
		}
		if got == nil || got.Name != tt.want {
			t.Errorf("ByName(%q) = %v, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("light"); got.Name != "light" {
		t.Errorf("Resolve(light) = %q", got.Name)
	}
	if got := Resolve("dark"); got.Name != "dark" {
		t.Errorf("Resolve(dark) = %q", got.Name)
	}
	// "auto" follows the terminal background, so only the fallback
	// behavior is checked: it must yield a real theme.
	got := Resolve("auto")
	if got == nil || (got.Name != "light" && got.Name != "dark") {
		t.Errorf("Resolve(auto) = %v, want light or dark", got)
	}
}

func TestGetSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	Set(Dark())
	if Get().Name != "dark" {
		t.Errorf("after Set(Dark()) Get().Name = %q", Get().Name)
	}

	Set(nil)
	if Get().Name != "dark" {
		t.Errorf("Set(nil) replaced the active theme")
	}

	Init("light")
	if Get().Name != "light" {
		t.Errorf("after Init(light) Get().Name = %q", Get().Name)
	}
}

// Both palettes must style the same categories: switching themes may
// change colors but never which text gets decorated.
func TestThemesCoverSameCategories(t *testing.T) {
	cats := []syntax.Category{
		syntax.Heading,
		syntax.Blockquote,
		syntax.ListMarker,
		syntax.HorizontalRule,
		syntax.Bold,
		syntax.Italic,
		syntax.InlineCode,
		syntax.LinkText,
		syntax.LinkURL,
		syntax.CodeFence,
	}

	light, dark := Light(), Dark()
	for _, cat := range cats {
		if _, ok := light.Syntax[cat]; !ok {
			t.Errorf("light theme missing style for %s", cat)
		}
		if _, ok := dark.Syntax[cat]; !ok {
			t.Errorf("dark theme missing style for %s", cat)
		}
	}
	if len(light.Syntax) != len(dark.Syntax) {
		t.Errorf("light styles %d categories, dark styles %d", len(light.Syntax), len(dark.Syntax))
	}
}

func TestStylesheet(t *testing.T) {
	light, err := Stylesheet(Light())
	if err != nil {
		t.Fatalf("Stylesheet(light): %v", err)
	}
	dark, err := Stylesheet(Dark())
	if err != nil {
		t.Fatalf("Stylesheet(dark): %v", err)
	}

	if !strings.Contains(light, ".chroma") {
		t.Errorf("light stylesheet has no .chroma selectors:\n%s", light)
	}
	if light == dark {
		t.Errorf("light and dark stylesheets are identical")
	}

	again, err := Stylesheet(Light())
	if err != nil {
		t.Fatalf("Stylesheet(light) second call: %v", err)
	}
	if again != light {
		t.Errorf("cached stylesheet differs from first result")
	}
}

func TestStylesheetUnknownStyleFallsBack(t *testing.T) {
	custom := Light()
	custom.ChromaStyle = "no-such-style"
	css, err := Stylesheet(custom)
	if err != nil {
		t.Fatalf("Stylesheet: %v", err)
	}
	if css == "" {
		t.Errorf("fallback stylesheet is empty")
	}
}
