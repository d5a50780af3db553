package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/history"
)

var (
	recentLimit     int
	recentForget    string
	recentSnapshots string
)

var recentCmd = &cobra.Command{
	Use:   "recent [query]",
	Short: "List recently opened documents",
	Long: `List the documents recently analyzed or rendered, newest first. An
optional query fuzzy-matches against the stored paths.

--snapshots shows how one document's metrics changed across the
analysis runs recorded for it.

Examples:
  markwright recent
  markwright recent notes              # fuzzy filter by path
  markwright recent --limit 5
  markwright recent --snapshots README.md
  markwright recent --forget old-draft.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVar(&recentLimit, "limit", 0, "Maximum entries to show (default from config)")
	recentCmd.Flags().StringVar(&recentForget, "forget", "", "Drop a path from the history and exit")
	recentCmd.Flags().StringVar(&recentSnapshots, "snapshots", "", "Show recorded metric snapshots for a path")
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("document history is disabled in config")
	}

	store := openHistory(cfg)
	defer store.Close()

	ctx := cmd.Context()

	if recentForget != "" {
		if err := store.Forget(ctx, recentForget); err != nil {
			return fmt.Errorf("failed to forget %q: %w", recentForget, err)
		}
		fmt.Printf("Forgot %s\n", recentForget)
		return nil
	}

	if recentSnapshots != "" {
		return showSnapshots(cmd, store, recentSnapshots)
	}

	limit := recentLimit
	if limit <= 0 {
		limit = cfg.History.MaxEntries
	}

	docs, err := store.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(args) == 1 && args[0] != "" {
		docs = filterRecent(docs, args[0])
	}

	if len(docs) == 0 {
		fmt.Println("No documents in history.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PATH\tOPENS\tLAST OPENED\t\n")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%d\t%s\t\n", d.Path, d.OpenCount, formatRelativeTime(d.UpdatedAt))
	}
	return w.Flush()
}

func showSnapshots(cmd *cobra.Command, store history.Store, path string) error {
	snaps, err := store.Snapshots(cmd.Context(), path, recentLimit)
	if err != nil {
		return fmt.Errorf("failed to load snapshots: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Printf("No snapshots recorded for %s\n", path)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "WHEN\t WORDS\t CHARS\t READ\t SCORE\t STRUCTURE\t\n")
	for _, sn := range snaps {
		fmt.Fprintf(w, "%s\t %d\t %d\t %d min\t %d\t %s\t\n",
			formatRelativeTime(sn.CreatedAt),
			sn.Metrics.WordCount,
			sn.Metrics.CharCount,
			sn.Metrics.ReadingTime,
			sn.Metrics.Readability,
			sn.Metrics.Structure)
	}
	return w.Flush()
}

// filterRecent keeps the documents whose paths fuzzy-match the query,
// best matches first.
func filterRecent(docs []history.Document, query string) []history.Document {
	paths := make([]string, len(docs))
	for i, d := range docs {
		paths[i] = d.Path
	}

	matches := fuzzy.Find(query, paths)
	filtered := make([]history.Document, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, docs[m.Index])
	}
	return filtered
}

// formatRelativeTime returns a human-readable relative time string
func formatRelativeTime(t time.Time) string {
	dur := time.Since(t)
	switch {
	case dur < time.Minute:
		return "just now"
	case dur < time.Hour:
		return fmt.Sprintf("%dm ago", int(dur.Minutes()))
	case dur < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(dur.Hours()))
	case dur < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(dur.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
