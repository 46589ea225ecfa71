package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/winprefs/internal/logging"
	"github.com/billie-coop/winprefs/internal/tui/components/dialog"
	"github.com/billie-coop/winprefs/internal/tui/components/status"
	"github.com/billie-coop/winprefs/internal/tui/events"
)

// Store is what the root model needs from settings.Store: the dialog's
// operations plus the document path and the change notifications.
type Store interface {
	dialog.Store
	Path() string
	Changes() <-chan struct{}
}

// settingsFileChangedMsg is delivered when the watched document changed
type settingsFileChangedMsg struct{}

// Model is the root of the program. Key presses and file change
// notifications both arrive as messages on bubbletea's event loop, so the
// store is only ever touched from Update.
type Model struct {
	width  int
	height int

	// Components
	statusBar     *status.Component
	dialogManager *dialog.Manager

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	store Store
	log   *logging.Logger
}

// New creates the root model with the preferences dialog already open
func New(store Store, eventBroker *events.Broker, log *logging.Logger) *Model {
	if log == nil {
		log = logging.Discard()
	}

	m := &Model{
		statusBar:     status.New(),
		dialogManager: dialog.NewManager(store, eventBroker),
		eventBroker:   eventBroker,
		store:         store,
		log:           log,
	}

	// Subscribe to all events
	m.eventSub = eventBroker.Subscribe()

	m.dialogManager.OpenDialog(dialog.SettingsDialogType)
	m.refreshStatus()

	return m
}

// Init initializes the TUI model and all components
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.statusBar.Init(),
		m.dialogManager.Init(),
		m.listenForEvents(),
		m.listenForChanges(),
	)
}

// Result reports how the preferences dialog ended
func (m *Model) Result() dialog.DialogResult {
	if r, ok := m.dialogManager.Settings().GetResult().(dialog.DialogResult); ok {
		return r
	}
	return dialog.DialogResult{Action: dialog.ActionCancel, Cancelled: true}
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case events.Event:
		cmds = append(cmds, m.handleEvent(msg), m.listenForEvents())
		m.refreshStatus()
		return m, tea.Batch(cmds...)

	case settingsFileChangedMsg:
		if err := m.dialogManager.Reload(); err != nil {
			m.log.LogError(err)
			cmds = append(cmds, m.statusBar.SetMessage(err.Error(), status.Error))
		}
		cmds = append(cmds, m.listenForChanges())
		m.refreshStatus()
		return m, tea.Batch(cmds...)

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.dialogManager.CloseAll()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resizeComponents()
	}

	_, cmd := m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	_, cmd = m.dialogManager.Update(msg)
	cmds = append(cmds, cmd)

	if !m.dialogManager.IsDialogOpen() {
		return m, tea.Quit
	}

	m.refreshStatus()
	return m, tea.Batch(cmds...)
}

// View renders the dialog above the status bar
func (m *Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.dialogManager.View(),
		m.statusBar.View(),
	)
}
