package theme

import (
	"bytes"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

var (
	stylesheetMu    sync.Mutex
	stylesheetCache = map[string]string{}
)

// Stylesheet returns the chroma CSS for the theme's code style. The
// CSS uses class selectors so the same rendered HTML works under any
// theme; it is computed once per style name and cached.
func Stylesheet(t *Theme) (string, error) {
	stylesheetMu.Lock()
	defer stylesheetMu.Unlock()

	if css, ok := stylesheetCache[t.ChromaStyle]; ok {
		return css, nil
	}

	style := styles.Get(t.ChromaStyle)
	if style == nil {
		style = styles.Fallback
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("failed to build stylesheet for %s: %w", t.ChromaStyle, err)
	}

	css := buf.String()
	stylesheetCache[t.ChromaStyle] = css
	return css, nil
}
