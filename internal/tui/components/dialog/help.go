package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// HelpDialog explains each setting and the key bindings
type HelpDialog struct {
	*BaseDialog

	keys KeyMap

	// rendered markdown, cached per width
	rendered      string
	renderedWidth int
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Help"),
		keys:       DefaultKeyMap(),
	}
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "q", "?", "enter", "ctrl+c":
			d.SetResult(DialogResult{Action: ActionClose})
			return d, d.Close()
		}
	}

	return d, nil
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}

	width := d.ContentWidth(12, 40)
	if width > 80 {
		width = 80
	}
	if d.rendered == "" || d.renderedWidth != width {
		d.rendered = strings.TrimRight(styles.RenderMarkdown(helpMarkdown(d.keys), width), "\n")
		d.renderedWidth = width
	}

	return d.RenderDialog(d.rendered)
}

// helpMarkdown documents every field and binding
func helpMarkdown(keys KeyMap) string {
	var b strings.Builder

	b.WriteString("## Settings\n\n")
	for _, f := range settings.Fields {
		fmt.Fprintf(&b, "- **%s** (`%s`): %s", f.Label, f.Key, f.Description)
		switch f.Kind {
		case settings.FieldChoice:
			labels := make([]string, len(f.Choices))
			for i, c := range f.Choices {
				labels[i] = c.Label
			}
			fmt.Fprintf(&b, ". One of %s.", strings.Join(labels, ", "))
		case settings.FieldDuration:
			fmt.Fprintf(&b, ", %d to %d ms.", f.Min, f.Max)
		default:
			b.WriteString(".")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n## Keys\n\n")
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			writeBinding(&b, binding)
		}
	}

	b.WriteString("\nOK and Apply write the settings file. Apply is available only while there are unsaved changes. ")
	b.WriteString("Cancel leaves the file as it was last saved.\n")

	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "- `%s` %s\n", h.Key, h.Desc)
}
