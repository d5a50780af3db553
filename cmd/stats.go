package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/document"
	"github.com/awrigley/markwright/internal/input"
	"github.com/awrigley/markwright/internal/render"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [files...]",
	Short: "Show writing statistics for markdown documents",
	Long: `Analyze markdown documents and report writing statistics: word and
character counts, reading time, heading structure, links, code blocks,
readability, and detected issues.

Reads from stdin when no files are given. Glob patterns and the
special "clipboard" source work too.

Examples:
  markwright stats README.md
  markwright stats docs/**/*.md
  markwright stats clipboard
  cat notes.md | markwright stats
  markwright stats --json README.md`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

// statsReport pairs a source name with its metrics for JSON output.
type statsReport struct {
	Name    string           `json:"name"`
	Metrics document.Metrics `json:"metrics"`
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sources, err := input.Resolve(args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no documents matched")
	}

	store := openHistory(cfg)
	defer store.Close()

	ctx := cmd.Context()
	reports := make([]statsReport, 0, len(sources))
	for _, src := range sources {
		m := document.Analyze(src.Content)
		reports = append(reports, statsReport{Name: src.Name, Metrics: m})

		// Only file-backed sources enter the history.
		if src.IsFile() {
			if err := store.Touch(ctx, src.Name); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
			}
			if err := store.RecordSnapshot(ctx, src.Name, m); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record snapshot: %v\n", err)
			}
		}
	}

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		// A single document encodes as its bare metrics so the output
		// pipes straight into jq without unwrapping.
		if len(reports) == 1 {
			return enc.Encode(reports[0].Metrics)
		}
		return enc.Encode(reports)
	}

	styles := render.DefaultStyles()
	width := render.TerminalWidth()
	for i, rep := range reports {
		if i > 0 {
			fmt.Println()
		}
		if len(reports) > 1 {
			fmt.Println(styles.Title.Render(rep.Name))
		}
		fmt.Println(styles.StatsPanel(rep.Metrics, width))
	}

	return nil
}
