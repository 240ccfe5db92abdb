package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Log levels, lowest first
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger writes levelled diagnostics (normally to stderr).
// Progress lines meant for the user go through Formatter instead.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	level  int
	prefix string
}

// NewLogger creates a Logger writing messages at or above level to w.
// A nil writer discards everything.
func NewLogger(w io.Writer, level int) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, level: level, prefix: "gotest1"}
}

// ParseLevel maps debug, info, warn and error to a level, defaulting to info
func ParseLevel(s string) int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, color.New(color.Faint), "debug", format, args...)
}

// Infof logs an informational message
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, color.New(color.FgCyan), "info", format, args...)
}

// Warnf logs a recoverable problem
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, color.New(color.FgYellow), "warning", format, args...)
}

// Errorf logs a fatal problem
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, color.New(color.FgRed), "error", format, args...)
}

// Warn is a func(error) adapter for search error handlers
func (l *Logger) Warn(err error) {
	l.Warnf("%v", err)
}

func (l *Logger) log(level int, c *color.Color, tag, format string, args ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w != os.Stderr && l.w != os.Stdout {
		c.DisableColor()
	}
	c.Fprintf(l.w, "%s: %s: ", l.prefix, tag)
	fmt.Fprintf(l.w, format+"\n", args...)
}
