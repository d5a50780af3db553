package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/input"
	"github.com/awrigley/markwright/internal/preview"
	"github.com/awrigley/markwright/internal/render"
	"github.com/awrigley/markwright/internal/theme"
)

var (
	previewOutput string
	previewTerm   bool
	previewTitle  string
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render markdown to a themed HTML page",
	Long: `Render a markdown document to a standalone HTML page carrying the
active theme's palette and highlighted code blocks. With --term the
document renders straight to the terminal instead.

The page goes to stdout unless -o names a file. A user stylesheet
named by preview.css in the config is appended after the generated
rules, so it can override anything.

Examples:
  markwright preview notes.md > notes.html
  markwright preview -o notes.html notes.md
  markwright preview --term notes.md
  cat notes.md | markwright preview --term`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Write the HTML page to this file")
	previewCmd.Flags().BoolVar(&previewTerm, "term", false, "Render to the terminal instead of HTML")
	previewCmd.Flags().StringVar(&previewTitle, "title", "", "Page title (defaults to the file name)")
}

func runPreview(cmd *cobra.Command, args []string) error {
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
	if len(sources) > 1 {
		return fmt.Errorf("preview renders one document at a time, got %d", len(sources))
	}
	src := sources[0]

	store := openHistory(cfg)
	defer store.Close()
	if src.IsFile() {
		if err := store.Touch(cmd.Context(), src.Name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
		}
	}

	if previewTerm {
		out, err := render.Markdown(src.Content, theme.Get(), render.TerminalWidth())
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Print(out)
		return nil
	}

	title := previewTitle
	if title == "" && src.IsFile() {
		title = filepath.Base(src.Name)
	}
	if title == "" {
		title = cfg.Preview.Title
	}

	page, err := preview.Render(src.Content, preview.Options{
		Title:   title,
		CSSPath: cfg.Preview.CSS,
	})
	if err != nil {
		return err
	}

	if previewOutput != "" {
		if err := os.WriteFile(previewOutput, []byte(page), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", previewOutput, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", previewOutput)
		return nil
	}

	fmt.Print(page)
	return nil
}
