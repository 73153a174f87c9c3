package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStandardLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewStandardLogger(
		WithOutput(&buf),
		WithLevel(LevelDebug),
	)

	levels := []struct {
		log  func(string, ...any)
		tag  string
		text string
	}{
		{logger.Debug, "[DEBUG]", "a debug message"},
		{logger.Info, "[INFO]", "an info message"},
		{logger.Warn, "[WARN]", "a warning message"},
		{logger.Error, "[ERROR]", "an error message"},
	}
	for _, lv := range levels {
		lv.log(lv.text)
		if !strings.Contains(buf.String(), lv.tag) || !strings.Contains(buf.String(), lv.text) {
			t.Errorf("Expected %s %q, got: %s", lv.tag, lv.text, buf.String())
		}
		buf.Reset()
	}

	// Formatted messages
	logger.Info("Formatted %s with %d params", "message", 2)
	if !strings.Contains(buf.String(), "Formatted message with 2 params") {
		t.Errorf("Formatted message failed, got: %s", buf.String())
	}
	buf.Reset()

	// Level filtering
	logger.SetLevel(LevelError)
	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("should not appear")
	logger.Error("should appear")
	output := buf.String()
	if strings.Contains(output, "should not appear") || !strings.Contains(output, "should appear") {
		t.Errorf("Level filtering failed, got: %s", output)
	}
	if logger.GetLevel() != LevelError {
		t.Errorf("Expected LevelError, got: %v", logger.GetLevel())
	}
	if logger.Enabled(LevelWarn) || !logger.Enabled(LevelError) {
		t.Error("Enabled disagrees with the configured level")
	}
}

func TestLoggerFieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLogger(WithOutput(&buf), WithInitialFields(map[string]any{"view": "filter"}))

	logger.WithFields(map[string]any{
		"pos":  3,
		"name": "a",
	}).Info("advanced")

	output := buf.String()
	if !strings.Contains(output, "name=a pos=3 view=filter advanced") {
		t.Errorf("Expected fields in key order, got: %s", output)
	}

	// The parent keeps its own fields
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "pos=") {
		t.Errorf("Parent logger picked up child fields: %s", buf.String())
	}
}

func TestChildLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := NewStandardLogger(WithOutput(&buf), WithLevel(LevelInfo))
	child := parent.WithField("component", "trace")

	child.SetLevel(LevelDebug)
	child.Debug("child debug")
	parent.Debug("parent debug")

	output := buf.String()
	if !strings.Contains(output, "component=trace child debug") {
		t.Errorf("Child debug message missing, got: %s", output)
	}
	if strings.Contains(output, "parent debug") {
		t.Errorf("Parent level changed with child, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
}

func TestDefaultLogger(t *testing.T) {
	originalLogger := defaultLogger
	defer func() {
		defaultLogger = originalLogger
	}()

	var buf bytes.Buffer
	SetDefaultLogger(NewStandardLogger(
		WithOutput(&buf),
		WithLevel(LevelInfo),
	))

	Info("Global info message")
	if !strings.Contains(buf.String(), "[INFO]") || !strings.Contains(buf.String(), "Global info message") {
		t.Errorf("Global info logging failed, got: %s", buf.String())
	}
	buf.Reset()

	WithField("global", true).Info("Global with field")
	output := buf.String()
	if !strings.Contains(output, "global=true Global with field") {
		t.Errorf("Global logging with field failed, got: %s", output)
	}
}
