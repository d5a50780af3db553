package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{Theme: "light"}

	cfg.ApplyOverrides("dark")
	if cfg.Theme != "dark" {
		t.Fatalf("theme=%q, want %q", cfg.Theme, "dark")
	}

	cfg.ApplyOverrides("")
	if cfg.Theme != "dark" {
		t.Fatalf("theme changed unexpectedly: %q", cfg.Theme)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("MARKWRIGHT_TEST_CSS", "/tmp/custom.css")

	cases := []struct{ in, want string }{
		{"${MARKWRIGHT_TEST_CSS}", "/tmp/custom.css"},
		{"$MARKWRIGHT_TEST_CSS", "/tmp/custom.css"},
		{"/plain/path.css", "/plain/path.css"},
		{"", ""},
	}
	for _, c := range cases {
		if got := expandEnv(c.in); got != c.want {
			t.Errorf("expandEnv(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if got, want := expandPath("~/styles.css"), filepath.Join(home, "styles.css"); got != want {
		t.Errorf("expandPath(~/styles.css) = %q, want %q", got, want)
	}
	if got := expandPath("/abs/styles.css"); got != "/abs/styles.css" {
		t.Errorf("expandPath left absolute path alone, got %q", got)
	}
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("failed to get config dir: %v", err)
	}
	if want := filepath.Join("/custom/xdg", "markwright"); dir != want {
		t.Errorf("config dir = %q, want %q", dir, want)
	}
}

func TestSaveAndExists(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("expected no config file yet")
	}

	cfg := &Config{
		Theme:   "dark",
		Format:  FormatConfig{Write: true},
		History: HistoryConfig{Enabled: true, MaxEntries: 10},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if !Exists() {
		t.Fatal("expected config file to exist after save")
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("failed to get config path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	content := string(data)
	for _, want := range []string{"theme: dark", "write: true", "enabled: true", "max_entries: 10"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected saved config to contain %q, got:\n%s", want, content)
		}
	}
}
