package logger

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_text_quality/internal/ports"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type levelLogger struct {
	next ports.Logger
	min  Level
}

// WithLevel drops messages below lowest before they reach next.
func WithLevel(next ports.Logger, lowest Level) ports.Logger {
	return &levelLogger{next: next, min: lowest}
}

func (f *levelLogger) Debug(msg string, keysAndValues ...interface{}) {
	if f.min <= LevelDebug {
		f.next.Debug(msg, keysAndValues...)
	}
}

func (f *levelLogger) Info(msg string, keysAndValues ...interface{}) {
	if f.min <= LevelInfo {
		f.next.Info(msg, keysAndValues...)
	}
}

func (f *levelLogger) Warn(msg string, keysAndValues ...interface{}) {
	if f.min <= LevelWarn {
		f.next.Warn(msg, keysAndValues...)
	}
}

func (f *levelLogger) Error(msg string, keysAndValues ...interface{}) {
	f.next.Error(msg, keysAndValues...)
}

func (f *levelLogger) Close() error {
	return f.next.Close()
}
