// Package log provides the leveled logger used by seqview's tracing views and
// command-line driver.
package log

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognise
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the logging level
type Level int

const (
	// LevelDebug level for cursor-by-cursor tracing
	LevelDebug Level = iota
	// LevelInfo level for general operational information
	LevelInfo
	// LevelWarn level for recoverable problems such as a rejected command
	LevelWarn
	// LevelError level for failures that abort the current operation
	LevelError
	// LevelFatal level for errors that terminate the process
	LevelFatal
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// ParseLevel maps a case-insensitive level name to a Level
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Logger interface defines the methods for logging at different levels
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// Fatal logs a fatal-level message and then calls os.Exit(1)
	Fatal(msg string, args ...any)
	// WithFields returns a new logger with the given fields added to the context
	WithFields(fields map[string]any) Logger
	// WithField returns a new logger with the given field added to the context
	WithField(key string, value any) Logger
	// Enabled reports whether messages at level would be written
	Enabled(level Level) bool
	GetLevel() Level
	SetLevel(level Level)
}

// StandardLogger writes one line per message:
//
//	[2006-01-02 15:04:05.000] [LEVEL] key=value ... message
//
// Fields are written in key order so output is stable.
type StandardLogger struct {
	mu     *sync.Mutex
	level  Level
	out    io.Writer
	fields map[string]any
}

// LoggerOption is a function that configures a StandardLogger
type LoggerOption func(*StandardLogger)

// WithLevel sets the logging level
func WithLevel(level Level) LoggerOption {
	return func(l *StandardLogger) {
		l.level = level
	}
}

// WithOutput sets the output writer
func WithOutput(out io.Writer) LoggerOption {
	return func(l *StandardLogger) {
		l.out = out
	}
}

// WithInitialFields sets initial fields for the logger
func WithInitialFields(fields map[string]any) LoggerOption {
	return func(l *StandardLogger) {
		maps.Copy(l.fields, fields)
	}
}

// NewStandardLogger creates a new StandardLogger; by default it logs at info
// level to stderr
func NewStandardLogger(options ...LoggerOption) *StandardLogger {
	logger := &StandardLogger{
		mu:     &sync.Mutex{},
		level:  LevelInfo,
		out:    os.Stderr,
		fields: make(map[string]any),
	}
	for _, option := range options {
		option(logger)
	}
	return logger
}

func (l *StandardLogger) log(level Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] [%s]", time.Now().Format("2006-01-02 15:04:05.000"), level)
	for _, k := range slices.Sorted(maps.Keys(l.fields)) {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')

	// Derived loggers share the parent's mutex so lines never interleave
	l.mu.Lock()
	io.WriteString(l.out, b.String())
	l.mu.Unlock()

	if level == LevelFatal {
		os.Exit(1)
	}
}

func (l *StandardLogger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

func (l *StandardLogger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

func (l *StandardLogger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

func (l *StandardLogger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

func (l *StandardLogger) Fatal(msg string, args ...any) {
	l.log(LevelFatal, msg, args...)
}

// WithFields returns a new logger with the given fields added to the context.
// The new logger shares the output and lock of l but has its own level.
func (l *StandardLogger) WithFields(fields map[string]any) Logger {
	child := &StandardLogger{
		mu:     l.mu,
		level:  l.GetLevel(),
		out:    l.out,
		fields: make(map[string]any, len(l.fields)+len(fields)),
	}
	maps.Copy(child.fields, l.fields)
	maps.Copy(child.fields, fields)
	return child
}

// WithField returns a new logger with the given field added to the context
func (l *StandardLogger) WithField(key string, value any) Logger {
	return l.WithFields(map[string]any{key: value})
}

func (l *StandardLogger) Enabled(level Level) bool {
	return level >= l.GetLevel()
}

func (l *StandardLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *StandardLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

var defaultLogger = NewStandardLogger()

// SetDefaultLogger sets the default logger instance
func SetDefaultLogger(logger *StandardLogger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the default logger instance
func GetDefaultLogger() *StandardLogger {
	return defaultLogger
}

// Debug logs a debug-level message to the default logger
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info-level message to the default logger
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning-level message to the default logger
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error-level message to the default logger
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Fatal logs a fatal-level message to the default logger and then calls os.Exit(1)
func Fatal(msg string, args ...any) {
	defaultLogger.Fatal(msg, args...)
}

// WithFields returns a new logger with the given fields added to the context
func WithFields(fields map[string]any) Logger {
	return defaultLogger.WithFields(fields)
}

// WithField returns a new logger with the given field added to the context
func WithField(key string, value any) Logger {
	return defaultLogger.WithField(key, value)
}

// SetLevel sets the logging level of the default logger
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}
