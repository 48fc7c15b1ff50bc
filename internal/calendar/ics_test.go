package calendar

import (
	"strings"
	"testing"
	"time"

	"planner/internal/event"
)

func TestGenerate(t *testing.T) {
	start := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	evt := &event.Event{
		ID:          "1709992860000-k3x9q0m2f",
		Title:       "Team sync",
		Description: "weekly status",
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		Location:    "Room 4",
		Reminder:    event.Reminder30Min,
		CreatedAt:   start.AddDate(0, 0, -7),
		UpdatedAt:   start.AddDate(0, 0, -1),
	}

	ics := Generate([]*event.Event{evt})

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"UID:1709992860000-k3x9q0m2f@planner.local",
		"SUMMARY:Team sync",
		"LOCATION:Room 4",
		"DTSTART:20260310T180000Z",
		"DTEND:20260310T190000Z",
		"BEGIN:VALARM",
		"TRIGGER:-PT30M",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("Generate() output missing %q\n%s", want, ics)
		}
	}
}

func TestGenerateNoAlarmWithoutReminder(t *testing.T) {
	start := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	evt := &event.Event{
		ID:        "id-1",
		Title:     "No reminder",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}

	ics := Generate([]*event.Event{evt})
	if strings.Contains(ics, "VALARM") {
		t.Error("event without reminder should not carry a VALARM")
	}
}

func TestGenerateEmpty(t *testing.T) {
	ics := Generate(nil)
	if !strings.Contains(ics, "BEGIN:VCALENDAR") || strings.Contains(ics, "VEVENT") {
		t.Errorf("Generate(nil) should be a valid empty calendar:\n%s", ics)
	}
}

func TestTrigger(t *testing.T) {
	tests := []struct {
		reminder event.ReminderTime
		want     string
	}{
		{event.Reminder5Min, "-PT5M"},
		{event.Reminder15Min, "-PT15M"},
		{event.Reminder30Min, "-PT30M"},
		{event.Reminder1Hour, "-PT1H"},
		{event.Reminder1Day, "-P1D"},
	}

	for _, tt := range tests {
		if got := trigger(tt.reminder); got != tt.want {
			t.Errorf("trigger(%d) = %q, want %q", int(tt.reminder), got, tt.want)
		}
	}
}
