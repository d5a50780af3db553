package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadPaths(t *testing.T) {
	tempDir := t.TempDir()

	file1 := filepath.Join(tempDir, "notes.md")
	file2 := filepath.Join(tempDir, "draft.md")
	subDir := filepath.Join(tempDir, "sub")
	os.MkdirAll(subDir, 0755)
	file3 := filepath.Join(subDir, "deep.md")
	os.WriteFile(file1, []byte("# Notes\n"), 0644)
	os.WriteFile(file2, []byte("# Draft\n"), 0644)
	os.WriteFile(file3, []byte("# Deep\n"), 0644)

	t.Run("single file", func(t *testing.T) {
		sources, err := ReadPaths([]string{file1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 1 {
			t.Fatalf("expected 1 source, got %d", len(sources))
		}
		if sources[0].Content != "# Notes\n" {
			t.Errorf("unexpected content: %q", sources[0].Content)
		}
		if sources[0].Name != file1 {
			t.Errorf("expected name %s, got %s", file1, sources[0].Name)
		}
	})

	t.Run("multiple files", func(t *testing.T) {
		sources, err := ReadPaths([]string{file1, file2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 2 {
			t.Fatalf("expected 2 sources, got %d", len(sources))
		}
	})

	t.Run("glob pattern", func(t *testing.T) {
		pattern := filepath.Join(tempDir, "*.md")
		sources, err := ReadPaths([]string{pattern})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 2 {
			t.Fatalf("expected 2 sources from glob, got %d", len(sources))
		}
	})

	t.Run("recursive glob", func(t *testing.T) {
		pattern := filepath.Join(tempDir, "**", "*.md")
		sources, err := ReadPaths([]string{pattern})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 3 {
			t.Fatalf("expected 3 sources from recursive glob, got %d", len(sources))
		}
	})

	t.Run("glob skips directories", func(t *testing.T) {
		pattern := filepath.Join(tempDir, "*")
		sources, err := ReadPaths([]string{pattern})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, src := range sources {
			if src.Name == subDir {
				t.Errorf("directory %s should have been skipped", subDir)
			}
		}
	})

	t.Run("unmatched glob is not an error", func(t *testing.T) {
		pattern := filepath.Join(tempDir, "*.rst")
		sources, err := ReadPaths([]string{pattern})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 0 {
			t.Errorf("expected 0 sources, got %d", len(sources))
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := ReadPaths([]string{"/nonexistent/file.md"})
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})

	t.Run("empty path list", func(t *testing.T) {
		sources, err := ReadPaths([]string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 0 {
			t.Errorf("expected 0 sources, got %d", len(sources))
		}
	})
}

func TestSourceIsFile(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"notes.md", true},
		{"/home/user/doc.md", true},
		{"clipboard", false},
		{"stdin", false},
	}
	for _, tc := range cases {
		src := Source{Name: tc.name}
		if got := src.IsFile(); got != tc.want {
			t.Errorf("Source{Name: %q}.IsFile() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveReadsStdinPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = oldStdin })

	if _, err := w.WriteString("# Piped\n"); err != nil {
		t.Fatalf("failed to write to pipe: %v", err)
	}
	w.Close()

	sources, err := Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Name != "stdin" {
		t.Errorf("expected name stdin, got %s", sources[0].Name)
	}
	if sources[0].Content != "# Piped\n" {
		t.Errorf("unexpected content: %q", sources[0].Content)
	}
	if sources[0].IsFile() {
		t.Error("stdin source should not report as a file")
	}
}

func TestResolvePrefersArgsOverStdin(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "doc.md")
	os.WriteFile(file, []byte("# Doc\n"), 0644)

	sources, err := Resolve([]string{file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 1 || sources[0].Name != file {
		t.Fatalf("expected the named file, got %+v", sources)
	}
}
