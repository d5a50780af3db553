package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/export"
	"github.com/awrigley/markwright/internal/input"
)

var (
	exportTo     string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Convert markdown to another document format",
	Long: `Convert a markdown document to plain text, HTML, RTF, or ODT. The
target format comes from --to, or is inferred from the extension of
the output file named with -o.

Without -o the result goes to stdout, which suits the text formats;
ODT is a zip archive, so give it a file or redirect the output.

Examples:
  markwright export --to txt notes.md
  markwright export -o notes.rtf notes.md
  markwright export -o notes.odt notes.md
  cat notes.md | markwright export --to html > notes.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Target format: txt, html, rtf, odt, or md")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the result to this file (extension infers the format)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := resolveExportFormat(exportTo, exportOutput)
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
		return fmt.Errorf("export converts one document at a time, got %d", len(sources))
	}
	src := sources[0]

	store := openHistory(cfg)
	defer store.Close()
	if src.IsFile() {
		if err := store.Touch(cmd.Context(), src.Name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
		}
	}

	data, err := export.Export(src.Content, format)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", exportOutput, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%s)\n", exportOutput, format)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// resolveExportFormat picks the target format from the --to flag or
// the output file extension, preferring the explicit flag.
func resolveExportFormat(to, output string) (export.Format, error) {
	if to != "" {
		return export.ParseFormat(to)
	}
	if output != "" {
		return export.ForPath(output)
	}
	return "", fmt.Errorf("specify a format with --to or an output file with -o")
}
