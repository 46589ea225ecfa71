package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/winprefs/internal/tui/components/core"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// BaseDialog provides common dialog functionality
type BaseDialog struct {
	core.FocusableBase
	core.SizeableBase

	title     string
	isOpen    bool
	result    interface{}
	cancelled bool
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

// IsOpen returns whether the dialog is open
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return d.Focus()
}

// Close closes the dialog
func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return d.Blur()
}

// Cancel closes the dialog as cancelled
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

// GetResult returns the dialog result
func (d *BaseDialog) GetResult() interface{} {
	return d.result
}

// IsCancelled returns whether the dialog was cancelled
func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

// SetResult sets the dialog result
func (d *BaseDialog) SetResult(result interface{}) {
	d.result = result
}

// RenderDialog frames content with the title and centers it
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	dialogContent := content
	if d.title != "" {
		title := styles.ApplyBoldGradient(d.title, theme.Primary, theme.Accent)
		dialogContent = lipgloss.JoinVertical(lipgloss.Left, title, "", content)
	}

	framed := s.Border.Render(dialogContent)
	if d.Width == 0 || d.Height == 0 {
		return framed
	}

	return lipgloss.Place(
		d.Width,
		d.Height,
		lipgloss.Center,
		lipgloss.Center,
		framed,
	)
}
