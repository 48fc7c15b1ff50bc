package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"planner/internal/event"
	"planner/internal/settings"
)

func sampleEvent() *event.Event {
	start := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.Local)
	return &event.Event{
		ID:        "id-1",
		Title:     "Team sync",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Location:  "Room 4",
		Reminder:  event.Reminder15Min,
	}
}

func TestWriteEventsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, []*event.Event{sampleEvent()}, FormatText); err != nil {
		t.Fatalf("WriteEvents() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Found 1 event(s)", "Team sync", "id-1", "Room 4", "15 minutes before"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEventsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, nil, FormatText); err != nil {
		t.Fatalf("WriteEvents() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No events found.") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestWriteEventsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, []*event.Event{sampleEvent()}, FormatJSON); err != nil {
		t.Fatalf("WriteEvents() error: %v", err)
	}

	var decoded []*event.Event
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output does not parse: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].ID != "id-1" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteSettingsText(t *testing.T) {
	var buf bytes.Buffer
	s := settings.Settings{
		Theme:                settings.ThemeDark,
		FirstDayOfWeek:       settings.WeekStartSunday,
		NotificationsEnabled: false,
	}
	if err := WriteSettings(&buf, s, FormatText); err != nil {
		t.Fatalf("WriteSettings() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"dark", "sunday", "off"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings output missing %q:\n%s", want, out)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input    string
		wantHour int
		wantDay  int
		wantErr  bool
	}{
		{input: "2026-03-10", wantDay: 10, wantHour: 0},
		{input: "2026-03-10T18:30", wantDay: 10, wantHour: 18},
		{input: "2026-03-10 18:30", wantDay: 10, wantHour: 18},
		{input: "2026-03-10T18:30:45", wantDay: 10, wantHour: 18},
		{input: "10/03/2026", wantErr: true},
		{input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDateTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDateTime(%q) accepted, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDateTime(%q) error: %v", tt.input, err)
			}
			if got.Day() != tt.wantDay || got.Hour() != tt.wantHour {
				t.Errorf("parseDateTime(%q) = %v", tt.input, got)
			}
			if got.Location() != time.Local {
				t.Errorf("parseDateTime(%q) location = %v, want local", tt.input, got.Location())
			}
		})
	}
}
