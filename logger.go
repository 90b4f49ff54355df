package main

import (
	"io"
	"log"
	"strings"
)

// Level controls which lines a Logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel converts a level name to a Level. Unknown names and the empty
// string fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// tag is the line prefix for messages at this level.
func (l Level) tag() string {
	switch l {
	case LevelDebug:
		return "DEBUG "
	case LevelError:
		return "ERROR "
	default:
		return "INFO "
	}
}

// Logger is a minimal leveled logger over the standard library logger.
type Logger struct {
	out   *log.Logger
	level Level
}

// NewLogger creates a Logger writing to w, dropping lines below level.
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "itemsvc ", log.LstdFlags|log.Lmicroseconds),
		level: level,
	}
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// Fatalf logs a message regardless of level and exits the process.
func (l *Logger) Fatalf(format string, args ...any) {
	l.out.Fatalf(LevelError.tag()+format, args...)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf(level.tag()+format, args...)
}
