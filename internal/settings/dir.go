package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// Vendor and applet UUID under the user config dir
const (
	Vendor     = "cobinja"
	AppletUUID = "windowlist@cobinja.de"
)

//go:embed default_settings.json
var defaultTemplate []byte

// Dir is the per-applet settings directory holding one document per
// instance.
type Dir string

// ResolveDir returns <user config dir>/cobinja/windowlist@cobinja.de.
// When the platform reports no config dir, $HOME/.config is used.
func ResolveDir() (Dir, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", herr)
		}
		base = filepath.Join(home, ".config")
	}
	return Dir(filepath.Join(base, Vendor, AppletUUID)), nil
}

// DocumentPath returns the settings file for an instance
func (d Dir) DocumentPath(instanceID string) string {
	return filepath.Join(string(d), instanceID+".json")
}

// Ensure creates the directory if it does not exist
func (d Dir) Ensure() error {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	return nil
}

// Template is the source a new instance's document is seeded from.
// The zero Template is the bundled default.
type Template struct {
	Path string
}

// Bytes returns the template contents
func (t Template) Bytes() ([]byte, error) {
	if t.Path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read default settings template: %w", err)
	}
	return data, nil
}

// DefaultTemplate returns a copy of the bundled default document
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}
