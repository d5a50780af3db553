package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awrigley/markwright/internal/input"
	"github.com/awrigley/markwright/internal/mdfmt"
	"github.com/awrigley/markwright/internal/render"
)

var (
	fmtWrite bool
	fmtCheck bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Normalize markdown formatting",
	Long: `Rewrite markdown with normalized spacing: a blank line before each
heading, a single space after heading hashes and list markers,
collapsed blank runs, and no trailing blank lines. Running fmt on its
own output changes nothing.

By default the formatted document prints to stdout. Use --write to
rewrite files in place, --diff to preview the changes, and --check to
only report which files would change.

Examples:
  markwright fmt draft.md              # print formatted text
  markwright fmt -w draft.md           # rewrite in place
  markwright fmt --diff draft.md       # show what would change
  markwright fmt --check docs/*.md     # exit 1 if anything needs formatting
  cat draft.md | markwright fmt`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite files in place instead of printing")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "List files that would change and exit 1 if any")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show a unified diff of the changes")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The config default applies only when the flag is absent, so an
	// explicit --write=false still overrides format.write: true.
	if !cmd.Flags().Changed("write") {
		fmtWrite = cfg.Format.Write
	}

	sources, err := input.Resolve(args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no documents matched")
	}

	if fmtWrite {
		for _, src := range sources {
			if !src.IsFile() {
				return fmt.Errorf("--write needs file inputs, got %s", src.Name)
			}
		}
	}

	styles := render.DefaultStyles()
	changed := 0
	for _, src := range sources {
		formatted := mdfmt.Format(src.Content) + "\n"
		dirty := formatted != src.Content
		if dirty {
			changed++
		}

		switch {
		case fmtCheck:
			if dirty {
				fmt.Println(src.Name)
			}
		case fmtDiff:
			if dirty {
				fmt.Print(styles.UnifiedDiff(src.Name, src.Content, formatted))
			}
		case fmtWrite:
			if dirty {
				if err := os.WriteFile(src.Name, []byte(formatted), 0644); err != nil {
					return fmt.Errorf("failed to write %q: %w", src.Name, err)
				}
				fmt.Fprintf(os.Stderr, "formatted %s\n", src.Name)
			}
		default:
			fmt.Print(formatted)
		}
	}

	if fmtCheck && changed > 0 {
		// The list of files is the output; the status code carries
		// the verdict, like gofmt -l.
		os.Exit(1)
	}

	return nil
}
