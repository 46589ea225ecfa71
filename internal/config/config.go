package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownKey is returned by Set for keys the config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the winprefs configuration
type Config struct {
	// Default settings template; empty means the bundled one
	TemplatePath string `json:"template_path"`

	// UI preferences
	Theme string `json:"theme"`

	// File watch settle time in milliseconds
	DebounceMS int `json:"debounce_ms"`

	// Logging
	LogFile  string `json:"log_file"`
	JSONLogs bool   `json:"json_logs"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		TemplatePath: "",
		Theme:        "cobalt",
		DebounceMS:   100,
		LogFile:      "",
		JSONLogs:     false,
	}
}

// Debounce returns the watch settle time
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Manager handles configuration loading and saving
type Manager struct {
	configDir  string
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager rooted at configDir
func NewManager(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configPath: filepath.Join(configDir, "config.json"),
		config:     DefaultConfig(),
	}
}

// DefaultDir returns <user config dir>/winprefs
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", herr)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "winprefs"), nil
}

// Dir returns the directory holding config.json
func (m *Manager) Dir() string {
	return m.configDir
}

// Path returns the config file path
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)

	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// LogPath returns the configured log file, defaulting to the config dir
func (m *Manager) LogPath() string {
	if m.config.LogFile != "" {
		return m.config.LogFile
	}
	return filepath.Join(m.configDir, "winprefs.log")
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "template_path":
		m.config.TemplatePath = value
	case "theme":
		m.config.Theme = value
	case "debounce_ms":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("debounce_ms must be a non-negative integer: %q", value)
		}
		m.config.DebounceMS = n
	case "log_file":
		m.config.LogFile = value
	case "json_logs":
		m.config.JSONLogs = value == "true"
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return m.Save()
}

// expandEnvVars expands environment variables in path values
func (m *Manager) expandEnvVars(config *Config) {
	config.TemplatePath = m.expandString(config.TemplatePath)
	config.LogFile = m.expandString(config.LogFile)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func (m *Manager) expandString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
