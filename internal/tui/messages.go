package tui

// refreshStatus shows the document path and whether edits are pending
func (m *Model) refreshStatus() {
	left := m.store.Path()
	if m.store.Changed() {
		left += " [modified]"
	}
	m.statusBar.SetLeftContent(left)
}
