// Package log provides the small logging interface used across the
// binding, backed by log/slog.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	l *slog.Logger
}

// New returns a logger writing text records to stderr at info level.
func New() Logger {
	return NewWithWriter(os.Stderr, slog.LevelInfo)
}

// NewWithWriter returns a logger writing text records to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) Logger {
	return NewWithHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewWithHandler returns a logger emitting records through h.
func NewWithHandler(h slog.Handler) Logger {
	return &logger{l: slog.New(h)}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log: unknown level %q", s)
	}
	return level, nil
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.logf(slog.LevelInfo, format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.logf(slog.LevelError, format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.logf(slog.LevelDebug, format, args...)
}

func (l *logger) logf(level slog.Level, format string, args ...interface{}) {
	// skip formatting when the level is disabled
	if !l.l.Enabled(context.Background(), level) {
		return
	}
	l.l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Fatal writes the message to stderr and exits.
func Fatal(str string) {
	fmt.Fprintf(os.Stderr, "[FATAL]\t%s\n", str)
	os.Exit(1)
}
