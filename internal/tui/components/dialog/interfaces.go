package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/winprefs/internal/settings"
)

// Dialog represents a modal dialog component
type Dialog interface {
	// Core component methods
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string

	// Dialog-specific methods
	SetSize(width, height int) tea.Cmd
	IsOpen() bool
	Open() tea.Cmd
	Close() tea.Cmd
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool

	// Result handling
	GetResult() interface{}
	IsCancelled() bool
}

// Dialog actions reported through DialogResult
const (
	ActionOK     = "ok"
	ActionCancel = "cancel"
	ActionClose  = "close"
)

// DialogResult represents the result of a dialog
type DialogResult struct {
	Action    string
	Cancelled bool
}

// Store is the part of settings.Store the preferences dialog drives.
type Store interface {
	Get(key string) (settings.Value, bool)
	SetEntry(key string, value settings.Value, persistNow bool) error
	Changed() bool
	Persist() error
	Reload() error
}

var _ Store = (*settings.Store)(nil)

// OpenDialogMsg asks the Manager to push a dialog on top of the stack
type OpenDialogMsg struct {
	Type DialogType
}

func openDialog(t DialogType) tea.Cmd {
	return func() tea.Msg { return OpenDialogMsg{Type: t} }
}
