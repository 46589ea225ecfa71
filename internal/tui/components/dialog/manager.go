package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/winprefs/internal/tui/events"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	SettingsDialogType DialogType = "settings"
	HelpDialogType     DialogType = "help"
)

// Manager owns the dialogs and a stack of the open ones. Only the top
// dialog receives input; closing it reveals the one below.
type Manager struct {
	dialogs     map[DialogType]Dialog
	stack       []DialogType
	eventBroker *events.Broker
	width       int
	height      int
}

// NewManager creates a dialog manager whose settings dialog edits store
func NewManager(store Store, eventBroker *events.Broker) *Manager {
	m := &Manager{
		dialogs:     make(map[DialogType]Dialog),
		eventBroker: eventBroker,
	}

	m.dialogs[SettingsDialogType] = NewSettingsDialog(store, eventBroker)
	m.dialogs[HelpDialogType] = NewHelpDialog()

	return m
}

// Init initializes all dialogs
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.Init())
	}
	return tea.Batch(cmds...)
}

// Update routes msg to the top dialog and pops it once it closes
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.SetSize(msg.Width, msg.Height)
	case OpenDialogMsg:
		return m, m.OpenDialog(msg.Type)
	}

	active := m.GetActiveDialog()
	if active == "" {
		return m, nil
	}

	dialog := m.dialogs[active]
	model, cmd := dialog.Update(msg)
	if d, ok := model.(Dialog); ok {
		m.dialogs[active] = d
		if !d.IsOpen() {
			m.pop(active, d)
		}
	}

	return m, cmd
}

func (m *Manager) pop(active DialogType, d Dialog) {
	m.stack = m.stack[:len(m.stack)-1]

	m.publish(events.Event{
		Type: events.DialogCloseEvent,
		Payload: events.DialogPayload{
			DialogID: string(active),
			Data:     d.GetResult(),
		},
	})

	if below := m.GetActiveDialog(); below != "" {
		m.dialogs[below].Focus()
	}
}

// View renders the top dialog
func (m *Manager) View() string {
	active := m.GetActiveDialog()
	if active == "" {
		return ""
	}
	return m.dialogs[active].View()
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog pushes a dialog on the stack. Opening a dialog that is
// already on top does nothing.
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	dialog, ok := m.dialogs[dialogType]
	if !ok || m.GetActiveDialog() == dialogType {
		return nil
	}

	if below := m.GetActiveDialog(); below != "" {
		m.dialogs[below].Blur()
	}
	m.stack = append(m.stack, dialogType)

	m.publish(events.Event{
		Type:    events.DialogOpenEvent,
		Payload: events.DialogPayload{DialogID: string(dialogType)},
	})

	return dialog.Open()
}

// CloseActiveDialog closes the top dialog as cancelled
func (m *Manager) CloseActiveDialog() tea.Cmd {
	active := m.GetActiveDialog()
	if active == "" {
		return nil
	}
	d := m.dialogs[active]
	cmd := d.Close()
	m.pop(active, d)
	return cmd
}

// CloseAll cancels every open dialog, top first
func (m *Manager) CloseAll() {
	for m.IsDialogOpen() {
		active := m.GetActiveDialog()
		d := m.dialogs[active]
		if s, ok := d.(*SettingsDialog); ok {
			s.cancel()
		} else {
			d.Close()
		}
		m.pop(active, d)
	}
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return len(m.stack) > 0
}

// GetActiveDialog returns the dialog on top of the stack
func (m *Manager) GetActiveDialog() DialogType {
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1]
}

// Settings returns the preferences dialog
func (m *Manager) Settings() *SettingsDialog {
	d, _ := m.dialogs[SettingsDialogType].(*SettingsDialog)
	return d
}

// Reload forwards an external file change to the preferences dialog
func (m *Manager) Reload() error {
	if d := m.Settings(); d != nil {
		return d.Reload()
	}
	return nil
}

func (m *Manager) publish(event events.Event) {
	if m.eventBroker != nil {
		m.eventBroker.Publish(event)
	}
}
