package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "winprefs")
	m := NewManager(dir)
	require.NoError(t, m.Load())

	_, err := os.Stat(m.Path())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), m.Get())
	assert.Equal(t, 100*time.Millisecond, m.Get().Debounce())
	assert.Equal(t, filepath.Join(dir, "winprefs.log"), m.LogPath())
}

func TestManager_LoadExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINPREFS_TEST_TEMPLATES", "/opt/templates")
	content := `{"template_path": "${WINPREFS_TEST_TEMPLATES}/default.json", "log_file": "$WINPREFS_UNSET_VAR/x.log"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "/opt/templates/default.json", cfg.TemplatePath)
	assert.Equal(t, "$WINPREFS_UNSET_VAR/x.log", cfg.LogFile)
	// fields missing from the file keep their defaults
	assert.Equal(t, "cobalt", cfg.Theme)
	assert.Equal(t, 100, cfg.DebounceMS)
}

func TestManager_LoadRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0o644))
	assert.Error(t, NewManager(dir).Load())
}

func TestManager_Set(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	require.NoError(t, m.Set("theme", "ember"))
	require.NoError(t, m.Set("debounce_ms", "250"))
	require.NoError(t, m.Set("json_logs", "true"))
	assert.Error(t, m.Set("debounce_ms", "soon"))
	assert.ErrorIs(t, m.Set("colour", "red"), ErrUnknownKey)

	reloaded := NewManager(dir)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "ember", reloaded.Get().Theme)
	assert.Equal(t, 250*time.Millisecond, reloaded.Get().Debounce())
	assert.True(t, reloaded.Get().JSONLogs)
}
