package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Error string `json:"error"`
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestLogger_JSONMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winprefs.log")
	l := New(Config{Filename: path, JSON: true})
	l.Logf("wrote %s", "1.json")
	l.LogError(errors.New("boom"))
	l.LogError(nil)
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 2)

	var rec logRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, logRecord{Level: "info", Msg: "wrote 1.json"}, rec)

	rec = logRecord{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, logRecord{Level: "error", Error: "boom"}, rec)
}

func TestLogger_TextMode(t *testing.T) {
	t.Setenv("WINPREFS_JSON_LOGS", "")
	path := filepath.Join(t.TempDir(), "winprefs.log")
	l := New(Config{Filename: path})
	l.Log("hello")
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "hello"))
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Log("nothing")
	assert.NoError(t, l.Close())
}
