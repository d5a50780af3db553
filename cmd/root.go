package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme: light, dark, or auto (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the document history")
}

var rootCmd = &cobra.Command{
	Use:   "markwright",
	Short: "Analyze, format, and publish markdown documents",
	Long: `markwright is a markdown writing tool for the terminal: it measures
documents, normalizes their formatting, highlights them for reading,
and renders them to HTML, RTF, ODT, and plain text.

Examples:
  markwright stats README.md           # writing statistics and issues
  markwright fmt -w draft.md           # normalize formatting in place
  markwright highlight notes.md        # syntax-highlighted view
  markwright preview -o out.html notes.md
  markwright export --to rtf notes.md

  markwright config                    # view configuration
  markwright themes                    # pick a color theme`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var themeFlag string
var noHistory bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
