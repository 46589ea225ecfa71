package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

const statusBarHeight = 1

// resizeComponents resizes all components based on current window size
func (m *Model) resizeComponents() tea.Cmd {
	return tea.Batch(
		m.dialogManager.SetSize(m.width, max(m.height-statusBarHeight, 0)),
		m.statusBar.SetSize(m.width, statusBarHeight),
	)
}
