package dialog

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines key bindings for the preferences dialog
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Toggle   key.Binding
	Apply    key.Binding
	OK       key.Binding
	Cancel   key.Binding
	Quit     key.Binding
	Help     key.Binding

	// While editing a duration
	Commit key.Binding
	Abort  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "shift+left"),
			key.WithHelp("pgdn", "-100ms"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "shift+right"),
			key.WithHelp("pgup", "+100ms"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", "change"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply"),
		),
		OK: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit without saving"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "set"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard"),
		),
	}
}

// ShortHelp is shown under the settings rows
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Apply, k.OK, k.Cancel, k.Help}
}

// EditHelp is shown while a duration is being typed
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Abort}
}

// FullHelp groups every binding for the help dialog
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Toggle, k.Apply, k.OK, k.Cancel, k.Quit, k.Help},
	}
}
