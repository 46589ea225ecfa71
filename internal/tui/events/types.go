package events

import "github.com/billie-coop/winprefs/internal/settings"

// EventType identifies the type of event
type EventType string

const (
	// Settings events
	SettingsChangedEvent  EventType = "settings.changed"
	SettingsSavedEvent    EventType = "settings.saved"
	SettingsReloadedEvent EventType = "settings.reloaded"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	ErrorMessageEvent  EventType = "ui.error"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"

	wildcard EventType = "*"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload any
}

// StatusMessagePayload carries text for the status bar
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

// SettingPayload names one edited entry
type SettingPayload struct {
	Key   string
	Value settings.Value
}

// SavedPayload reports a persisted document
type SavedPayload struct {
	Path string
}

type DialogPayload struct {
	DialogID string
	Data     any
}
