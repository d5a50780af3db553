package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/awrigley/markwright/internal/render"
	"github.com/awrigley/markwright/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes [name]",
	Short: "Select a color theme",
	Long: `Interactively select the color theme used for highlighting, the
statistics panel, and HTML previews.

Use arrow keys to navigate and see a live preview of each theme.
Press enter to select and save, or esc to cancel. Pass a name to set
it directly. "auto" follows the terminal background.

Examples:
  markwright themes
  markwright themes dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemes,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Select a color theme",
	Long: `Set the color theme, interactively or by name. "auto" follows the
terminal background.`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runThemes,
	ValidArgsFunction: themeNameCompletion,
}

func init() {
	rootCmd.AddCommand(themesCmd)
	configCmd.AddCommand(configThemeCmd)
}

// themeChoices lists the selectable theme names, "auto" last.
func themeChoices() []string {
	return append(theme.Names(), "auto")
}

func themeNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(themeChoices(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return applyTheme(args[0])
	}

	// Without a terminal there is nothing to navigate; print the
	// choices instead.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		listThemes(cfg.Theme)
		return nil
	}

	selected, err := runThemeSelector(cfg.Theme)
	if err != nil {
		return err
	}
	if selected == "" {
		return nil // cancelled
	}

	return applyTheme(selected)
}

// applyTheme validates the name, patches the config file, and makes
// the theme active for the rest of this run.
func applyTheme(name string) error {
	if name != "auto" && theme.ByName(name) == nil {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(themeChoices(), ", "))
	}

	if err := patchConfigValue("theme", name); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	theme.Init(name)
	fmt.Printf("Theme set to: %s\n", name)
	return nil
}

func listThemes(current string) {
	for _, name := range themeChoices() {
		if name == current {
			fmt.Printf("* %s (current)\n", name)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

// themeSample is the document rendered in the selector preview pane.
const themeSample = `# Chapter One

The *quick* brown fox **jumps** over the ` + "`lazy`" + ` dog,
then follows [a link](https://example.com).

- first draft
- second draft

> Writing is rewriting.
`

// themeSelectorModel is the bubbletea model for theme selection
type themeSelectorModel struct {
	names     []string
	cursor    int
	current   string
	selected  string
	cancelled bool
	width     int
	height    int
}

func newThemeSelectorModel(current string) themeSelectorModel {
	names := themeChoices()

	// Start the cursor on the active theme
	cursor := 0
	for i, name := range names {
		if name == current {
			cursor = i
			break
		}
	}

	return themeSelectorModel{
		names:   names,
		cursor:  cursor,
		current: current,
	}
}

func (m themeSelectorModel) Init() tea.Cmd {
	return nil
}

func (m themeSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"))):
			m.cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m themeSelectorModel) View() string {
	if len(m.names) == 0 {
		return "No themes available"
	}

	hovered := m.names[m.cursor]
	previewTheme := theme.Resolve(hovered)

	// Build list column
	var listBuilder strings.Builder
	listBuilder.WriteString(lipgloss.NewStyle().Bold(true).Render("Select Theme"))
	listBuilder.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
		}

		label := name
		if name == m.current {
			label += " (current)"
		}

		if i == m.cursor {
			style := lipgloss.NewStyle().Bold(true).Foreground(previewTheme.Selection)
			listBuilder.WriteString(style.Render(cursor + label))
		} else {
			listBuilder.WriteString(cursor + label)
		}
		listBuilder.WriteString("\n")
	}

	listBuilder.WriteString("\n")
	listBuilder.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("↑/↓ navigate · enter select · esc cancel"))

	// Build preview column with the hovered theme's colors
	preview := renderThemePreview(previewTheme, hovered)

	listCol := lipgloss.NewStyle().Width(26).Render(listBuilder.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, listCol, "  ", preview)
}

// renderThemePreview renders the sample document and panel swatches
// through the candidate theme.
func renderThemePreview(t *theme.Theme, name string) string {
	styles := render.NewStyles(t, os.Stdout)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	title := name
	if name != t.Name {
		// "auto" resolves to a concrete palette
		title = fmt.Sprintf("%s → %s", name, t.Name)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render("Preview: "+title) + "\n\n")
	b.WriteString(styles.Highlight(themeSample))
	b.WriteString("\n")
	b.WriteString(styles.Good.Render("✓ readability 82") + "\n")
	b.WriteString(styles.Warn.Render("⚠ 2 issues found") + "\n")
	b.WriteString(styles.Bad.Render("✗ structure: poor"))

	return borderStyle.Render(b.String())
}

// runThemeSelector runs the interactive theme selector and returns the selected theme name
func runThemeSelector(current string) (string, error) {
	// Try to use /dev/tty for proper terminal handling
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		tty = nil
	}

	model := newThemeSelectorModel(current)

	var opts []tea.ProgramOption
	if tty != nil {
		opts = append(opts, tea.WithInput(tty), tea.WithOutput(tty))
	}

	p := tea.NewProgram(model, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	if tty != nil {
		tty.Close()
	}

	m := finalModel.(themeSelectorModel)
	if m.cancelled {
		return "", nil
	}
	return m.selected, nil
}
