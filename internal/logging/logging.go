// Package logging builds the structured file logger.
//
// The terminal belongs to the UI, so log lines go to a file as JSON. Every
// line carries the run's session id so interleaved runs can be told apart.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is a zerolog logger plus the file it writes to.
type Logger struct {
	zerolog.Logger
	Session string
	closer  io.Closer
}

// Open creates (or appends to) the log file at path. Unknown levels fall back
// to info.
func Open(path, level string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	l := New(file, level)
	l.closer = file
	return l, nil
}

// New returns a logger writing JSON lines to w.
func New(w io.Writer, level string) *Logger {
	session := uuid.NewString()
	zl := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("session", session).
		Logger()
	return &Logger{Logger: zl, Session: session}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
