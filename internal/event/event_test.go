package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	start := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		mutate  func(e *Event)
		wantErr string
	}{
		{
			name:   "valid event",
			mutate: func(e *Event) {},
		},
		{
			name:    "missing id",
			mutate:  func(e *Event) { e.ID = "" },
			wantErr: "id is required",
		},
		{
			name:    "empty title",
			mutate:  func(e *Event) { e.Title = "" },
			wantErr: "title is required",
		},
		{
			name:    "whitespace-only title",
			mutate:  func(e *Event) { e.Title = "   " },
			wantErr: "title is required",
		},
		{
			name:    "zero start date",
			mutate:  func(e *Event) { e.StartDate = time.Time{} },
			wantErr: "start date is required",
		},
		{
			name:    "unsupported reminder",
			mutate:  func(e *Event) { e.Reminder = 7 },
			wantErr: "invalid reminder",
		},
		{
			name: "end before start is allowed",
			mutate: func(e *Event) {
				e.EndDate = e.StartDate.Add(-time.Hour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := New("Team sync", "weekly", start, start.Add(time.Hour), "Room 4", Reminder15Min)
			tt.mutate(evt)

			err := evt.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestReminderTimeValid(t *testing.T) {
	for _, r := range ReminderTimes {
		if !r.Valid() {
			t.Errorf("ReminderTime(%d).Valid() = false, want true", int(r))
		}
	}

	for _, r := range []ReminderTime{-5, 1, 10, 120, 999} {
		if r.Valid() {
			t.Errorf("ReminderTime(%d).Valid() = true, want false", int(r))
		}
	}
}

func TestReminderTimeString(t *testing.T) {
	if got := Reminder1Hour.String(); got != "1 hour before" {
		t.Errorf("Reminder1Hour.String() = %q", got)
	}
	if got := Reminder1Day.String(); got != "1 day before" {
		t.Errorf("Reminder1Day.String() = %q", got)
	}
	if got := ReminderNone.String(); got != "none" {
		t.Errorf("ReminderNone.String() = %q", got)
	}
}

// The JSON field names are shared with existing stored data; renaming a Go
// field must not change the wire form.
func TestPersistedFieldNames(t *testing.T) {
	evt := New("Dentist", "", time.Now(), time.Now().Add(time.Hour), "Main St", Reminder30Min)
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	for _, field := range []string{"id", "title", "startDate", "endDate", "reminder", "createdAt", "updatedAt"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("marshaled event missing contract field %q", field)
		}
	}

	// Optional fields are omitted when empty
	if _, ok := raw["description"]; ok {
		t.Error("empty description should be omitted")
	}
}
