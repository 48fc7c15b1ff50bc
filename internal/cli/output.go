package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"planner/internal/event"
	"planner/internal/settings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

const displayTime = "Mon Jan 2 2006 15:04"

// WriteEvents writes a list of events in the specified format.
func WriteEvents(w io.Writer, events []*event.Event, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, events)
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d event(s):\n\n", len(events))
	for _, evt := range events {
		writeEventText(w, evt)
		fmt.Fprintln(w)
	}
	return nil
}

// WriteEvent writes a single event in the specified format.
func WriteEvent(w io.Writer, evt *event.Event, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, evt)
	}
	writeEventText(w, evt)
	return nil
}

func writeEventText(w io.Writer, evt *event.Event) {
	fmt.Fprintf(w, "%s\n", evt.Title)
	fmt.Fprintf(w, "  ID:       %s\n", evt.ID)
	fmt.Fprintf(w, "  Starts:   %s\n", evt.StartDate.Local().Format(displayTime))
	fmt.Fprintf(w, "  Ends:     %s\n", evt.EndDate.Local().Format(displayTime))
	if evt.Location != "" {
		fmt.Fprintf(w, "  Location: %s\n", evt.Location)
	}
	if evt.Description != "" {
		fmt.Fprintf(w, "  Notes:    %s\n", evt.Description)
	}
	if evt.Reminder != event.ReminderNone {
		fmt.Fprintf(w, "  Reminder: %s\n", evt.Reminder)
	}
}

// WriteSettings writes the settings record in the specified format.
func WriteSettings(w io.Writer, s settings.Settings, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, s)
	}

	fmt.Fprintf(w, "Theme:         %s\n", s.Theme)
	fmt.Fprintf(w, "Week starts:   %s\n", settings.WeekStartName(s.FirstDayOfWeek))
	fmt.Fprintf(w, "Notifications: %s\n", onOff(s.NotificationsEnabled))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
