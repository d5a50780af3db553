package preview

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// The user stylesheet is read on every render of the preview, so the
// contents are cached and invalidated by modification time.
var cssCache struct {
	mu      sync.Mutex
	path    string
	modTime time.Time
	css     string
}

// UserCSS reads the stylesheet at path, reusing the cached contents
// until the file changes. An empty path yields no CSS. A file that
// disappears clears the cache and reports the error.
func UserCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	cssCache.mu.Lock()
	defer cssCache.mu.Unlock()

	fi, err := os.Stat(path)
	if err != nil {
		cssCache.path, cssCache.css, cssCache.modTime = "", "", time.Time{}
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}

	if cssCache.path == path && cssCache.modTime.Equal(fi.ModTime()) {
		return cssCache.css, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cssCache.path, cssCache.css, cssCache.modTime = "", "", time.Time{}
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}

	cssCache.path = path
	cssCache.modTime = fi.ModTime()
	cssCache.css = string(data)
	return cssCache.css, nil
}
