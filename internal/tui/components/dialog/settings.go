package dialog

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/events"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// Buttons on the last row of the settings dialog
type button int

const (
	buttonOK button = iota
	buttonApply
	buttonCancel
)

var buttonLabels = [...]string{"OK", "Apply", "Cancel"}

// largeStep is the duration step for pgup/pgdown
const largeStep = 100

// SettingsDialog edits the applet settings held by a Store. Every control
// reads its value from the store on render; edits go through SetEntry
// without persisting, and OK or Apply persist.
type SettingsDialog struct {
	*BaseDialog

	store       Store
	fields      []settings.Field
	eventBroker *events.Broker

	cursor       int // rows 0..len(fields)-1, then the button row
	button       button
	applyEnabled bool

	editing bool
	input   *NumberInput

	keys KeyMap
	help help.Model
	err  error
}

// NewSettingsDialog creates a settings dialog bound to store
func NewSettingsDialog(store Store, eventBroker *events.Broker) *SettingsDialog {
	d := &SettingsDialog{
		BaseDialog:  NewBaseDialog("Window List Preferences"),
		store:       store,
		fields:      settings.Fields,
		eventBroker: eventBroker,
		input:       NewNumberInput(len(strconv.Itoa(settings.MaxDurationMS))),
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	d.refreshApply()
	return d
}

// Init initializes the dialog
func (d *SettingsDialog) Init() tea.Cmd {
	return nil
}

// ApplyEnabled reports whether Apply is currently sensitive
func (d *SettingsDialog) ApplyEnabled() bool {
	return d.applyEnabled
}

// Editing reports whether a duration is being typed
func (d *SettingsDialog) Editing() bool {
	return d.editing
}

// Reload merges external changes from disk and refreshes Apply.
// Values render straight from the store so no control state is rebuilt.
func (d *SettingsDialog) Reload() error {
	if err := d.store.Reload(); err != nil {
		d.err = err
		return err
	}
	d.refreshApply()
	d.publish(events.Event{Type: events.SettingsReloadedEvent})
	return nil
}

// Update handles messages
func (d *SettingsDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	// ctrl+c ends the dialog even mid-edit
	if key.Matches(keyMsg, d.keys.Quit) {
		d.stopEditing()
		return d, d.cancel()
	}

	if d.editing {
		return d, d.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, d.keys.Cancel):
		return d, d.cancel()
	case key.Matches(keyMsg, d.keys.OK):
		return d, d.confirm()
	case key.Matches(keyMsg, d.keys.Apply):
		d.apply()
	case key.Matches(keyMsg, d.keys.Help):
		return d, openDialog(HelpDialogType)
	case key.Matches(keyMsg, d.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(keyMsg, d.keys.Down):
		if d.cursor < len(d.fields) {
			d.cursor++
		}
	case key.Matches(keyMsg, d.keys.Left):
		if d.onButtons() {
			d.button = (d.button + 2) % 3
		} else {
			d.step(d.fields[d.cursor], -1)
		}
	case key.Matches(keyMsg, d.keys.Right):
		if d.onButtons() {
			d.button = (d.button + 1) % 3
		} else {
			d.step(d.fields[d.cursor], 1)
		}
	case key.Matches(keyMsg, d.keys.PageDown):
		if !d.onButtons() && d.fields[d.cursor].Kind == settings.FieldDuration {
			d.step(d.fields[d.cursor], -largeStep)
		}
	case key.Matches(keyMsg, d.keys.PageUp):
		if !d.onButtons() && d.fields[d.cursor].Kind == settings.FieldDuration {
			d.step(d.fields[d.cursor], largeStep)
		}
	case key.Matches(keyMsg, d.keys.Toggle):
		if d.onButtons() {
			return d, d.press(d.button)
		}
		d.activate(d.fields[d.cursor])
	}

	return d, nil
}

func (d *SettingsDialog) updateEditing(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.keys.Commit):
		d.commitInput()
	case key.Matches(msg, d.keys.Abort):
		d.stopEditing()
	default:
		return d.input.Update(msg)
	}
	return nil
}

func (d *SettingsDialog) onButtons() bool {
	return d.cursor >= len(d.fields)
}

// activate handles enter/space on a field row
func (d *SettingsDialog) activate(f settings.Field) {
	switch f.Kind {
	case settings.FieldToggle, settings.FieldChoice:
		d.step(f, 1)
	case settings.FieldDuration:
		current := ""
		if n, ok := d.intValue(f.Key); ok {
			current = strconv.Itoa(n)
		}
		d.input.SetValue(current)
		d.input.Focus()
		d.editing = true
	}
}

// step moves a field's value by delta: choices wrap, toggles flip,
// durations move by delta milliseconds and stay in range.
func (d *SettingsDialog) step(f settings.Field, delta int) {
	current, ok := d.store.Get(f.Key)
	if !ok {
		return
	}

	var next settings.Value
	switch f.Kind {
	case settings.FieldToggle:
		b, _ := current.AsBool()
		next = settings.Bool(!b)
	case settings.FieldChoice:
		n, _ := current.AsInt()
		idx := f.ChoiceIndex(n)
		if idx < 0 {
			idx = 0
			delta = 0
		}
		count := len(f.Choices)
		idx = ((idx+delta)%count + count) % count
		next = settings.Int(f.Choices[idx].Code)
	case settings.FieldDuration:
		n, _ := current.AsInt()
		next = settings.Int(f.Clamp(n + delta*f.Step))
	}

	d.set(f, next)
}

func (d *SettingsDialog) commitInput() {
	f := d.fields[d.cursor]
	if n, ok := d.input.Int(); ok {
		d.set(f, settings.Int(f.Clamp(n)))
	}
	d.stopEditing()
}

func (d *SettingsDialog) stopEditing() {
	d.editing = false
	d.input.Blur()
}

// set writes one value to the store without persisting
func (d *SettingsDialog) set(f settings.Field, v settings.Value) {
	if err := d.store.SetEntry(f.Key, v, false); err != nil {
		d.fail(err)
		return
	}
	d.refreshApply()
	d.publish(events.Event{
		Type:    events.SettingsChangedEvent,
		Payload: events.SettingPayload{Key: f.Key, Value: v},
	})
}

func (d *SettingsDialog) refreshApply() {
	d.applyEnabled = d.store.Changed()
}

func (d *SettingsDialog) press(b button) tea.Cmd {
	switch b {
	case buttonOK:
		return d.confirm()
	case buttonApply:
		if d.applyEnabled {
			d.apply()
		}
	case buttonCancel:
		return d.cancel()
	}
	return nil
}

// persist writes the store and reports success
func (d *SettingsDialog) persist() bool {
	changed := d.store.Changed()
	if err := d.store.Persist(); err != nil {
		d.fail(err)
		return false
	}
	d.err = nil
	d.refreshApply()
	if changed {
		d.publish(events.Event{Type: events.SettingsSavedEvent})
		d.status("Settings saved", "success")
	}
	return true
}

func (d *SettingsDialog) apply() {
	d.persist()
}

func (d *SettingsDialog) confirm() tea.Cmd {
	if !d.persist() {
		return nil
	}
	d.SetResult(DialogResult{Action: ActionOK})
	return d.Close()
}

// cancel closes without persisting; unsaved edits stay in memory only
func (d *SettingsDialog) cancel() tea.Cmd {
	d.SetResult(DialogResult{Action: ActionCancel, Cancelled: true})
	return d.Cancel()
}

func (d *SettingsDialog) fail(err error) {
	d.err = err
	if d.eventBroker != nil {
		d.eventBroker.Error(err)
	}
}

func (d *SettingsDialog) status(message, kind string) {
	if d.eventBroker != nil {
		d.eventBroker.Status(message, kind)
	}
}

func (d *SettingsDialog) publish(event events.Event) {
	if d.eventBroker != nil {
		d.eventBroker.Publish(event)
	}
}

func (d *SettingsDialog) intValue(key string) (int, bool) {
	v, ok := d.store.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// View renders the dialog
func (d *SettingsDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	labelWidth := 0
	for _, f := range d.fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}

	var rows []string
	for i, f := range d.fields {
		selected := i == d.cursor

		marker := "  "
		label := s.Label.Width(labelWidth).Render(f.Label)
		if selected {
			marker = s.LabelSelected.Render("▶ ")
			label = s.LabelSelected.Width(labelWidth).Render(f.Label)
		}

		rows = append(rows, marker+label+"  "+d.renderValue(f, selected))
	}

	var desc string
	if !d.onButtons() {
		desc = s.Description.Render(d.fields[d.cursor].Description)
	}

	footer := d.help.ShortHelpView(d.keys.ShortHelp())
	if d.editing {
		footer = d.help.ShortHelpView(d.keys.EditHelp())
	}

	parts := []string{
		strings.Join(rows, "\n"),
		"",
		desc,
		"",
		d.renderButtons(),
	}
	if d.err != nil {
		parts = append(parts, "", s.Error.Render(d.err.Error()))
	}
	parts = append(parts, "", footer)

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (d *SettingsDialog) renderValue(f settings.Field, selected bool) string {
	s := styles.CurrentTheme().S()

	if selected && d.editing {
		return d.input.View() + s.Muted.Render(" ms")
	}

	text := "unset"
	if v, ok := d.store.Get(f.Key); ok {
		text = f.Format(v)
	}

	if !selected {
		return s.Value.Render(text)
	}
	switch f.Kind {
	case settings.FieldChoice, settings.FieldDuration:
		text = "◀ " + text + " ▶"
	}
	return s.ValueSelected.Render(text)
}

func (d *SettingsDialog) renderButtons() string {
	s := styles.CurrentTheme().S()

	var buttons []string
	for i, label := range buttonLabels {
		b := button(i)
		style := s.Button
		switch {
		case b == buttonApply && !d.applyEnabled:
			style = s.ButtonDisabled
		case d.onButtons() && b == d.button:
			style = s.ButtonFocused
		}
		buttons = append(buttons, style.Render(label), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
