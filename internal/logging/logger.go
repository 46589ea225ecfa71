// Package logging writes the tool's diagnostics to a rotating log file.
// The terminal belongs to the dialog, so nothing here prints to stdout.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how logs are written
type Config struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	JSON       bool
}

// Logger is a small file logger
type Logger struct {
	logger   *log.Logger
	out      io.Writer
	jsonMode bool
}

// New creates a logger backed by a lumberjack rotating file.
// WINPREFS_JSON_LOGS=1 forces JSON lines.
func New(cfg Config) *Logger {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 28
	}
	logFile := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
	return &Logger{
		logger:   log.New(logFile, "", log.LstdFlags),
		out:      logFile,
		jsonMode: cfg.JSON || os.Getenv("WINPREFS_JSON_LOGS") == "1",
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return &Logger{logger: log.New(io.Discard, "", 0), out: io.Discard}
}

// Close closes the underlying log file
func (l *Logger) Close() error {
	if c, ok := l.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Log logs a message
func (l *Logger) Log(message string) {
	if l.jsonMode {
		_ = json.NewEncoder(l.out).Encode(map[string]any{"level": "info", "msg": message})
		return
	}
	l.logger.Print(message)
}

// Logf logs a formatted message
func (l *Logger) Logf(format string, v ...interface{}) {
	l.Log(fmt.Sprintf(format, v...))
}

// LogError logs an error
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	if l.jsonMode {
		_ = json.NewEncoder(l.out).Encode(map[string]any{"level": "error", "error": err.Error()})
		return
	}
	l.logger.Printf("Error: %s", err)
}
