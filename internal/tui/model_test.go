package tui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/components/dialog"
	"github.com/billie-coop/winprefs/internal/tui/events"
)

func newTestModel(t *testing.T) (*Model, *settings.Store) {
	t.Helper()
	store, err := settings.Open(settings.Dir(t.TempDir()), "42", settings.WithoutWatch())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := New(store, events.NewBroker(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, store
}

func TestModel_OpensWithSettingsDialog(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, dialog.SettingsDialogType, m.dialogManager.GetActiveDialog())

	view := m.View()
	assert.Contains(t, view, "Animation time")
	assert.Contains(t, view, "42.json")
}

func TestModel_CancelQuits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, dialog.DialogResult{Action: dialog.ActionCancel, Cancelled: true}, m.Result())
}

func TestModel_CtrlCQuitsFromHelp(t *testing.T) {
	m, store := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, dialog.HelpDialogType, m.dialogManager.GetActiveDialog())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.dialogManager.IsDialogOpen())
	assert.Equal(t, dialog.DialogResult{Action: dialog.ActionCancel, Cancelled: true}, m.Result())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultTemplate(), data)
}

func TestModel_OKQuitsAfterSaving(t *testing.T) {
	m, store := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.True(t, store.Changed())
	assert.Contains(t, m.statusBar.View(), "[modified]")

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, store.Changed())
	assert.Equal(t, dialog.ActionOK, m.Result().Action)
}

func TestModel_FileChangeReloadsOnLoop(t *testing.T) {
	m, store := newTestModel(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"group-windows": 0}`), 0o644))
	_, cmd := m.Update(settingsFileChangedMsg{})
	assert.NotNil(t, cmd)

	v, _ := store.Get(settings.KeyGroupWindows)
	assert.Equal(t, settings.Int(0), v)
	assert.True(t, m.dialogManager.IsDialogOpen())
}

func TestModel_CorruptFileShowsError(t *testing.T) {
	m, store := newTestModel(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"group-windows": "all"}`), 0o644))
	m.Update(settingsFileChangedMsg{})

	require.NotNil(t, m.statusBar.Message())
	assert.Contains(t, m.statusBar.Message().Content, "failed to parse")
	v, _ := store.Get(settings.KeyGroupWindows)
	assert.Equal(t, settings.Int(2), v)
}

func TestModel_StatusEvents(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(events.Event{
		Type:    events.StatusMessageEvent,
		Payload: events.StatusMessagePayload{Message: "Settings saved", Type: "success"},
	})
	require.NotNil(t, m.statusBar.Message())
	assert.Equal(t, "Settings saved", m.statusBar.Message().Content)

	m.Update(events.Event{Type: events.SettingsReloadedEvent})
	assert.Equal(t, "Reloaded from disk", m.statusBar.Message().Content)
}
