package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("event saved", Fields{"id": "id-1", "count": 3})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}

	if entry.Level != "INFO" {
		t.Errorf("level = %q, want INFO", entry.Level)
	}
	if entry.Message != "event saved" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Fields["id"] != "id-1" {
		t.Errorf("fields = %v, want id field preserved", entry.Fields)
	}
	if entry.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("dropped", nil)
	l.Info("dropped", nil)
	l.Warn("kept", nil)
	l.Error("kept", nil, nil)

	lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1
	if buf.Len() == 0 || lines != 2 {
		t.Errorf("expected 2 log lines at warn level, got %d:\n%s", lines, buf.String())
	}
	if strings.Contains(buf.String(), "dropped") {
		t.Error("messages below the minimum level were emitted")
	}
}

func TestErrorFieldIncluded(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Error("write failed", Fields{"key": "@planner_events"}, errString("quota exceeded"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry.Error != "quota exceeded" {
		t.Errorf("error field = %q, want the wrapped message", entry.Error)
	}
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	} {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", input, got, want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
