package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dashdoc/dash/pkg/errors"
	"github.com/dashdoc/dash/pkg/view"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tagDescriptions are shown next to each choice in the picker.
var tagDescriptions = map[string]string{
	view.TagSplit:   "two views side by side or stacked",
	view.TagPage:    "views shown one after another",
	view.TagWebPage: "a web page",
	view.TagColor:   "a solid color",
}

// pickerKeyMap implements help.KeyMap for the picker footer.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "select")),
	Skip:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Skip, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// =============================================================================
// PickerModel - Interactive view type selection
// =============================================================================

// PickerModel is the bubbletea model for choosing the view a placeholder
// is filled with.
type PickerModel struct {
	Title   string
	Options []string
	Cursor  int

	// Choice is the selected option, empty when the placeholder was skipped.
	Choice string
	// Aborted is set when the user quit instead of choosing.
	Aborted bool

	help help.Model
}

// NewPickerModel creates a picker over options.
func NewPickerModel(title string, options []string) PickerModel {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	h.Styles.ShortDesc = listDimStyle
	h.Styles.ShortSeparator = listDimStyle
	return PickerModel{Title: title, Options: options, help: h}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, pickerKeys.Quit):
		m.Aborted = true
		return m, tea.Quit
	case key.Matches(km, pickerKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(km, pickerKeys.Down):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case key.Matches(km, pickerKeys.Skip):
		return m, tea.Quit
	case key.Matches(km, pickerKeys.Select):
		if len(m.Options) > 0 {
			m.Choice = m.Options[m.Cursor]
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-16s", cursor, opt)
		b.WriteString(style.Render(line))
		if desc := tagDescriptions[opt]; desc != "" {
			b.WriteString(" " + listDimStyle.Render(desc))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(pickerKeys))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// Fill Command
// =============================================================================

// slot is an empty placeholder and where it sits in the tree.
type slot struct {
	path        view.Path
	placeholder *view.Placeholder
}

// emptySlots lists the unselected placeholders below root depth-first.
func emptySlots(root view.Node) []slot {
	var out []slot
	view.Walk(root, func(n view.Node, path view.Path, _ int) bool {
		if p, ok := n.(*view.Placeholder); ok && p.State() == view.Unselected {
			out = append(out, slot{path: path, placeholder: p})
		}
		return true
	})
	return out
}

// fillCommand creates the fill command for filling placeholders.
func (c *CLI) fillCommand() *cobra.Command {
	var (
		nodePath string
		tag      string
	)

	cmd := &cobra.Command{
		Use:   "fill [path]",
		Short: "Fill empty placeholders interactively",
		Long: `Walk the empty placeholders of a document and pick the view each one
becomes. With --type every placeholder is filled with that view without
prompting. New views start from the [defaults] of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			doc, err := c.readDocument(cmd.Context(), file)
			if err != nil {
				return err
			}

			slots := emptySlots(doc.Root())
			if nodePath != "" {
				p, err := findPlaceholder(doc, nodePath)
				if err != nil {
					return err
				}
				path, _ := view.ParsePath(nodePath)
				slots = []slot{{path: path, placeholder: p}}
			}
			if len(slots) == 0 {
				printInfo("No empty placeholders in %s", file)
				return nil
			}

			var filled int
			if tag != "" {
				filled, err = c.fillAll(slots, tag)
			} else {
				filled, err = c.fillInteractive(cmd, slots)
			}
			if err != nil {
				return err
			}
			if filled == 0 {
				printDetail("Nothing filled")
				return nil
			}
			if err := c.writeDocument(cmd.Context(), file, doc); err != nil {
				return err
			}
			printSuccess("Filled %d of %d placeholders", filled, len(slots))
			printFile(file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&nodePath, "path", "p", "", "fill only the placeholder at this path")
	cmd.Flags().StringVarP(&tag, "type", "t", "", "fill without prompting, one of "+describeTags(fillableTags(view.Default)))

	return cmd
}

func (c *CLI) fillAll(slots []slot, tag string) (int, error) {
	for _, s := range slots {
		if _, err := s.placeholder.Select(c.registry, tag); err != nil {
			return 0, err
		}
	}
	return len(slots), nil
}

func (c *CLI) fillInteractive(cmd *cobra.Command, slots []slot) (int, error) {
	options := fillableTags(c.registry)
	filled := 0
	for i, s := range slots {
		title := fmt.Sprintf("Fill placeholder %s (%d of %d)", s.path, i+1, len(slots))
		p := tea.NewProgram(NewPickerModel(title, options),
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		final, err := p.Run()
		if err != nil {
			return filled, errors.Wrap(errors.ErrCodeInternal, err, "picker")
		}
		m, ok := final.(PickerModel)
		if !ok || m.Aborted {
			break
		}
		if m.Choice == "" {
			c.Logger.Debug("placeholder skipped", "path", s.path)
			continue
		}
		if _, err := s.placeholder.Select(c.registry, m.Choice); err != nil {
			return filled, err
		}
		filled++
	}
	return filled, nil
}
