package event

import (
	"fmt"
	"strings"
	"time"
)

// Event represents one calendar occurrence created by the user.
//
// The JSON field names are the persisted contract: events are stored as a
// JSON array under a single key, and the stored form must stay readable by
// any other consumer of the same data.
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	StartDate   time.Time    `json:"startDate"`
	EndDate     time.Time    `json:"endDate"`
	Location    string       `json:"location,omitempty"`
	Reminder    ReminderTime `json:"reminder,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ReminderTime is a reminder lead time in minutes before StartDate.
type ReminderTime int

// Supported reminder lead times. ReminderNone means no reminder.
const (
	ReminderNone  ReminderTime = 0
	Reminder5Min  ReminderTime = 5
	Reminder15Min ReminderTime = 15
	Reminder30Min ReminderTime = 30
	Reminder1Hour ReminderTime = 60
	Reminder1Day  ReminderTime = 1440
)

// ReminderTimes lists the supported lead times in display order.
var ReminderTimes = []ReminderTime{
	ReminderNone,
	Reminder5Min,
	Reminder15Min,
	Reminder30Min,
	Reminder1Hour,
	Reminder1Day,
}

// Valid reports whether r is one of the supported lead times.
func (r ReminderTime) Valid() bool {
	for _, v := range ReminderTimes {
		if r == v {
			return true
		}
	}
	return false
}

// String returns the human-readable label for a reminder lead time.
func (r ReminderTime) String() string {
	switch r {
	case ReminderNone:
		return "none"
	case Reminder5Min:
		return "5 minutes before"
	case Reminder15Min:
		return "15 minutes before"
	case Reminder30Min:
		return "30 minutes before"
	case Reminder1Hour:
		return "1 hour before"
	case Reminder1Day:
		return "1 day before"
	}
	return fmt.Sprintf("%d minutes before", int(r))
}

// Validate checks the fields a caller must supply. EndDate >= StartDate is
// not enforced here; that check belongs to the input edge.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("event start date is required")
	}
	if !e.Reminder.Valid() {
		return fmt.Errorf("invalid reminder lead time: %d minutes", int(e.Reminder))
	}
	return nil
}

// New creates an Event with a freshly generated ID. CreatedAt and UpdatedAt
// stay zero; the repository sets them on save.
func New(title, description string, start, end time.Time, location string, reminder ReminderTime) *Event {
	return &Event{
		ID:          GenerateID(),
		Title:       title,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Location:    location,
		Reminder:    reminder,
	}
}
