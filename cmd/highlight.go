package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/input"
	"github.com/awrigley/markwright/internal/render"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Print markdown with syntax highlighting",
	Long: `Print a markdown document with terminal syntax highlighting. Headings,
emphasis, inline code, links, list markers, blockquotes, and fenced
code blocks take the active theme's colors while the text itself stays
byte for byte intact.

Examples:
  markwright highlight notes.md
  markwright highlight --theme dark notes.md
  cat notes.md | markwright highlight`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
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

	styles := render.DefaultStyles()
	for _, src := range sources {
		if src.IsFile() {
			if err := store.Touch(cmd.Context(), src.Name); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
			}
		}
		fmt.Print(styles.Highlight(src.Content))
	}

	return nil
}
