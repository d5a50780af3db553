package cmd

import (
	"testing"
	"time"

	"github.com/awrigley/markwright/internal/history"
)

func TestFilterRecent(t *testing.T) {
	docs := []history.Document{
		{Path: "/home/ann/notes/meeting.md"},
		{Path: "/home/ann/drafts/novel.md"},
		{Path: "/tmp/scratch.md"},
	}

	got := filterRecent(docs, "notes")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Path != "/home/ann/notes/meeting.md" {
		t.Errorf("unexpected match: %s", got[0].Path)
	}

	if got := filterRecent(docs, "zzzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}

	// Fuzzy matching tolerates gaps in the query
	if got := filterRecent(docs, "nvl"); len(got) != 1 || got[0].Path != "/home/ann/drafts/novel.md" {
		t.Errorf("fuzzy query did not match the novel draft: %+v", got)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "seconds", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", t: now.Add(-48 * time.Hour), want: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Fatalf("formatRelativeTime=%q, want %q", got, tt.want)
			}
		})
	}

	old := now.Add(-30 * 24 * time.Hour)
	if got, want := formatRelativeTime(old), old.Format("Jan 2"); got != want {
		t.Fatalf("formatRelativeTime for old dates=%q, want %q", got, want)
	}
}
