// Package input resolves command-line arguments into markdown sources:
// literal paths, glob patterns, the special "clipboard" argument, and
// piped stdin.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/term"
)

// Source is one resolved input document.
type Source struct {
	Name    string // file path or special identifier ("clipboard", "stdin")
	Content string // the markdown text
}

// IsFile reports whether the source is backed by a file on disk,
// as opposed to the clipboard or a pipe.
func (s Source) IsFile() bool {
	return s.Name != "clipboard" && s.Name != "stdin"
}

// Resolve reads the documents named by args. With no args it falls
// back to piped stdin.
func Resolve(args []string) ([]Source, error) {
	if len(args) == 0 {
		content, err := ReadStdin()
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, fmt.Errorf("no input: pass a file path or pipe markdown on stdin")
		}
		return []Source{{Name: "stdin", Content: content}}, nil
	}
	return ReadPaths(args)
}

// ReadPaths reads content from the given paths
// Special values:
//   - "clipboard": reads text from system clipboard
//   - Glob patterns (e.g., "docs/**/*.md"): expands and reads all matching files
//   - Regular paths: reads file content directly
func ReadPaths(paths []string) ([]Source, error) {
	var result []Source

	for _, path := range paths {
		// Handle special "clipboard" value
		if strings.ToLower(path) == "clipboard" {
			content, err := readClipboard()
			if err != nil {
				return nil, fmt.Errorf("failed to read clipboard: %w", err)
			}
			result = append(result, Source{
				Name:    "clipboard",
				Content: content,
			})
			continue
		}

		// Expand ~ to home directory
		expandedPath := expandPath(path)

		matches, err := doublestar.FilepathGlob(expandedPath)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", path, err)
		}

		// If no matches but no wildcard chars, treat as literal path
		if len(matches) == 0 {
			if !containsGlobChars(path) {
				matches = []string{expandedPath}
			} else {
				// Glob pattern matched nothing
				continue
			}
		}

		// Read each matched file
		for _, match := range matches {
			// Skip directories
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %q: %w", match, err)
			}
			if info.IsDir() {
				continue
			}

			content, err := os.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read %q: %w", match, err)
			}

			result = append(result, Source{
				Name:    match,
				Content: string(content),
			})
		}
	}

	return result, nil
}

// HasStdin returns true if stdin has data available (not a TTY)
func HasStdin() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Check if stdin is a pipe or has data
	return (fi.Mode()&os.ModeCharDevice) == 0 || fi.Size() > 0
}

// ReadStdin reads all content from stdin
// Returns empty string if stdin is a TTY or has no data
func ReadStdin() (string, error) {
	if !HasStdin() {
		return "", nil
	}

	// Check if stdin is a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(data), nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// containsGlobChars returns true if the path contains glob metacharacters
func containsGlobChars(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
