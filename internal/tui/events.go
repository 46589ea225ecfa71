package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/winprefs/internal/tui/components/status"
	"github.com/billie-coop/winprefs/internal/tui/events"
)

// listenForEvents listens for events from the event broker
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventSub
		if !ok {
			return nil
		}
		return event
	}
}

// listenForChanges waits for the store's next file change notification
func (m *Model) listenForChanges() tea.Cmd {
	changes := m.store.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return settingsFileChangedMsg{}
	}
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(payload.Message, status.ParseType(payload.Type))
		}

	case events.ErrorMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			m.log.Logf("error: %s", payload.Message)
			return m.statusBar.SetMessage(payload.Message, status.Error)
		}

	case events.SettingsChangedEvent:
		if payload, ok := event.Payload.(events.SettingPayload); ok {
			m.log.Logf("Set %s = %s", payload.Key, payload.Value)
		}

	case events.SettingsSavedEvent:
		m.log.Logf("Saved %s", m.store.Path())

	case events.SettingsReloadedEvent:
		return m.statusBar.SetMessage("Reloaded from disk", status.Info)

	case events.DialogOpenEvent, events.DialogCloseEvent:
		if payload, ok := event.Payload.(events.DialogPayload); ok {
			m.log.Logf("%s %s", event.Type, payload.DialogID)
		}
	}

	return nil
}
