package dialog

import (
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/events"
)

var (
	keyUp        = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown      = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft      = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight     = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter     = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc       = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyPgUp      = tea.KeyPressMsg{Code: tea.KeyPgUp}
	keyPgDown    = tea.KeyPressMsg{Code: tea.KeyPgDown}
	keyBackspace = tea.KeyPressMsg{Code: tea.KeyBackspace}
	keyCtrlS     = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	keyCtrlO     = tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	keyCtrlC     = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	keyQuestion  = tea.KeyPressMsg{Code: '?', Text: "?"}
)

func typed(s string) []tea.KeyPressMsg {
	var msgs []tea.KeyPressMsg
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

func newTestStore(t *testing.T) *settings.Store {
	t.Helper()
	s, err := settings.Open(settings.Dir(t.TempDir()), "1", settings.WithoutWatch())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func openSettings(t *testing.T, store Store, broker *events.Broker) *SettingsDialog {
	t.Helper()
	d := NewSettingsDialog(store, broker)
	d.Open()
	return d
}

func send(d *SettingsDialog, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = d.Update(msg)
	}
	return cmd
}

// moveTo puts the cursor on the row bound to key
func moveTo(t *testing.T, d *SettingsDialog, key string) {
	t.Helper()
	for d.cursor > 0 {
		send(d, keyUp)
	}
	for i, f := range settings.Fields {
		if f.Key == key {
			for j := 0; j < i; j++ {
				send(d, keyDown)
			}
			return
		}
	}
	t.Fatalf("no field for %s", key)
}

func storedValue(t *testing.T, path, key string) settings.Value {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := settings.ParseDocument(data)
	require.NoError(t, err)
	v, ok := doc.Get(key)
	require.True(t, ok)
	return v
}

func TestSettingsDialog_ToggleTracksChanged(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)
	assert.False(t, d.ApplyEnabled())

	moveTo(t, d, settings.KeyDisplayPinned)
	send(d, keyEnter)

	v, _ := store.Get(settings.KeyDisplayPinned)
	assert.Equal(t, settings.Bool(false), v)
	assert.True(t, d.ApplyEnabled())

	// flipping back restores the loaded value, so nothing is pending
	send(d, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	v, _ = store.Get(settings.KeyDisplayPinned)
	assert.Equal(t, settings.Bool(true), v)
	assert.False(t, d.ApplyEnabled())
}

func TestSettingsDialog_ChoiceWraps(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)
	moveTo(t, d, settings.KeyDisplayCaptionFor)

	send(d, keyRight)
	v, _ := store.Get(settings.KeyDisplayCaptionFor)
	assert.Equal(t, settings.Int(int(settings.DisplayCaptionNone)), v)

	send(d, keyLeft, keyLeft)
	v, _ = store.Get(settings.KeyDisplayCaptionFor)
	assert.Equal(t, settings.Int(int(settings.DisplayCaptionRunning)), v)
}

func TestSettingsDialog_DurationsStayInRange(t *testing.T) {
	durations := []string{settings.KeyPreviewTimeoutShow, settings.KeyPreviewTimeoutHide, settings.KeyAnimationTime}
	for _, key := range durations {
		t.Run(key, func(t *testing.T) {
			store := newTestStore(t)
			d := openSettings(t, store, nil)
			moveTo(t, d, key)

			inRange := func() int {
				v, _ := store.Get(key)
				n, ok := v.AsInt()
				require.True(t, ok)
				require.GreaterOrEqual(t, n, settings.MinDurationMS)
				require.LessOrEqual(t, n, settings.MaxDurationMS)
				return n
			}

			for i := 0; i < 80; i++ {
				send(d, keyPgUp)
				inRange()
			}
			assert.Equal(t, settings.MaxDurationMS, inRange())
			send(d, keyRight)
			assert.Equal(t, settings.MaxDurationMS, inRange())

			for i := 0; i < 80; i++ {
				send(d, keyPgDown)
				inRange()
			}
			assert.Equal(t, settings.MinDurationMS, inRange())
			send(d, keyLeft)
			assert.Equal(t, settings.MinDurationMS, inRange())

			// typed input is clamped on commit
			send(d, keyEnter)
			require.True(t, d.Editing())
			send(d, keyBackspace)
			send(d, typed("99999")...)
			assert.Equal(t, "9999", d.input.Value())
			send(d, keyEnter)
			assert.False(t, d.Editing())
			assert.Equal(t, settings.MaxDurationMS, inRange())
		})
	}
}

func TestSettingsDialog_EditIgnoresNonDigits(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)
	moveTo(t, d, settings.KeyAnimationTime)

	send(d, keyEnter)
	assert.Equal(t, "200", d.input.Value())
	send(d, typed("-x5")...)
	assert.Equal(t, "2005", d.input.Value())

	send(d, keyEsc)
	assert.False(t, d.Editing())
	assert.True(t, d.IsOpen())
	v, _ := store.Get(settings.KeyAnimationTime)
	assert.Equal(t, settings.Int(200), v)
}

func TestSettingsDialog_EmptyInputKeepsValue(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)
	moveTo(t, d, settings.KeyPreviewTimeoutHide)

	send(d, keyEnter, keyBackspace, keyBackspace, keyBackspace, keyEnter)
	v, _ := store.Get(settings.KeyPreviewTimeoutHide)
	assert.Equal(t, settings.Int(300), v)
	assert.False(t, d.ApplyEnabled())
}

func TestSettingsDialog_ApplyPersistsAndStaysOpen(t *testing.T) {
	store := newTestStore(t)
	broker := events.NewBroker()
	saved := broker.Subscribe(events.SettingsSavedEvent)
	d := openSettings(t, store, broker)

	moveTo(t, d, settings.KeyHoverPreview)
	send(d, keyEnter)
	require.True(t, d.ApplyEnabled())

	send(d, keyCtrlS)
	assert.True(t, d.IsOpen())
	assert.False(t, d.ApplyEnabled())
	assert.False(t, store.Changed())
	assert.Equal(t, settings.Bool(false), storedValue(t, store.Path(), settings.KeyHoverPreview))
	assert.Len(t, saved, 1)

	// nothing pending, so a second apply publishes nothing
	send(d, keyCtrlS)
	assert.Len(t, saved, 1)
}

func TestSettingsDialog_OKPersistsAndCloses(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)

	moveTo(t, d, settings.KeyCaptionType)
	send(d, keyRight)
	send(d, keyCtrlO)

	assert.False(t, d.IsOpen())
	assert.False(t, d.IsCancelled())
	assert.Equal(t, DialogResult{Action: ActionOK}, d.GetResult())
	assert.Equal(t, settings.Int(int(settings.CaptionTitle)), storedValue(t, store.Path(), settings.KeyCaptionType))
}

func TestSettingsDialog_CancelDoesNotPersist(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)

	moveTo(t, d, settings.KeyAnimationTime)
	send(d, keyPgUp)
	send(d, keyEsc)

	assert.False(t, d.IsOpen())
	assert.True(t, d.IsCancelled())
	assert.Equal(t, DialogResult{Action: ActionCancel, Cancelled: true}, d.GetResult())
	assert.Equal(t, settings.Int(200), storedValue(t, store.Path(), settings.KeyAnimationTime))
}

func TestSettingsDialog_CtrlCCancelsWhileEditing(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)

	moveTo(t, d, settings.KeyAnimationTime)
	send(d, keyEnter)
	require.True(t, d.Editing())
	send(d, typed("42")...)

	send(d, keyCtrlC)
	assert.False(t, d.IsOpen())
	assert.False(t, d.Editing())
	assert.Equal(t, DialogResult{Action: ActionCancel, Cancelled: true}, d.GetResult())
	assert.False(t, store.Changed())
	assert.Equal(t, settings.Int(200), storedValue(t, store.Path(), settings.KeyAnimationTime))
}

func TestSettingsDialog_ButtonRow(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)

	for i := 0; i < len(settings.Fields)+3; i++ {
		send(d, keyDown)
	}
	require.True(t, d.onButtons())
	assert.Equal(t, buttonOK, d.button)

	// Apply is insensitive with nothing to save
	send(d, keyRight)
	assert.Equal(t, buttonApply, d.button)
	send(d, keyEnter)
	assert.True(t, d.IsOpen())

	moveTo(t, d, settings.KeyDisplayNumber)
	send(d, keyRight)
	for !d.onButtons() {
		send(d, keyDown)
	}
	send(d, keyEnter)
	assert.True(t, d.IsOpen())
	assert.False(t, store.Changed())
	assert.Equal(t, settings.Int(int(settings.DisplayNumberNone)), storedValue(t, store.Path(), settings.KeyDisplayNumber))

	send(d, keyLeft, keyLeft)
	assert.Equal(t, buttonCancel, d.button)
	send(d, keyEnter)
	assert.True(t, d.IsCancelled())
}

func TestSettingsDialog_ReloadRefreshesApply(t *testing.T) {
	store := newTestStore(t)
	d := openSettings(t, store, nil)

	moveTo(t, d, settings.KeyDisplayPinned)
	send(d, keyEnter)
	require.True(t, d.ApplyEnabled())

	// another writer rewrites the file without the toggled key
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"animation-time": 750}`), 0o644))

	require.NoError(t, d.Reload())
	v, _ := store.Get(settings.KeyAnimationTime)
	assert.Equal(t, settings.Int(750), v)

	// the unsaved toggle survives but no longer counts as pending
	v, _ = store.Get(settings.KeyDisplayPinned)
	assert.Equal(t, settings.Bool(false), v)
	assert.False(t, d.ApplyEnabled())
}

type failingStore struct {
	*settings.Store
}

func (failingStore) Persist() error { return errors.New("read-only file system") }

func TestSettingsDialog_PersistErrorKeepsDialogOpen(t *testing.T) {
	broker := events.NewBroker()
	errs := broker.Subscribe(events.ErrorMessageEvent)
	d := openSettings(t, failingStore{newTestStore(t)}, broker)

	moveTo(t, d, settings.KeyHoverPreview)
	send(d, keyEnter)
	send(d, keyCtrlO)

	assert.True(t, d.IsOpen())
	assert.True(t, d.ApplyEnabled())
	require.Len(t, errs, 1)
	assert.Contains(t, d.View(), "read-only file system")
}

func TestSettingsDialog_HelpKeyOpensHelp(t *testing.T) {
	d := openSettings(t, newTestStore(t), nil)
	cmd := send(d, keyQuestion)
	require.NotNil(t, cmd)
	assert.Equal(t, OpenDialogMsg{Type: HelpDialogType}, cmd())
}

func TestSettingsDialog_View(t *testing.T) {
	d := openSettings(t, newTestStore(t), nil)
	d.SetSize(120, 40)

	view := d.View()
	for _, f := range settings.Fields {
		assert.Contains(t, view, f.Label)
	}
	for _, label := range buttonLabels {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "500 ms")
	assert.Contains(t, view, "Focused")

	d.Close()
	assert.Empty(t, d.View())
}
