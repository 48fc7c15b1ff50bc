package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"planner/internal/event"
)

// Generate renders events as an iCalendar (RFC 5545) document, one VEVENT
// per event. Events with a nonzero reminder get a display VALARM with the
// matching lead time.
func Generate(events []*event.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//planner//planner//EN")

	now := time.Now().UTC()
	for _, evt := range events {
		add(cal, evt, now)
	}

	return cal.Serialize()
}

func add(cal *ics.Calendar, evt *event.Event, stamp time.Time) {
	e := cal.AddEvent(fmt.Sprintf("%s@planner.local", evt.ID))
	e.SetDtStampTime(stamp)
	e.SetCreatedTime(evt.CreatedAt)
	e.SetModifiedAt(evt.UpdatedAt)
	e.SetStartAt(evt.StartDate)
	e.SetEndAt(evt.EndDate)
	e.SetSummary(evt.Title)
	if evt.Description != "" {
		e.SetDescription(evt.Description)
	}
	if evt.Location != "" {
		e.SetLocation(evt.Location)
	}

	if evt.Reminder != event.ReminderNone {
		alarm := e.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(trigger(evt.Reminder))
	}
}

// trigger converts a reminder lead time to an RFC 5545 negative duration.
func trigger(r event.ReminderTime) string {
	minutes := int(r)
	switch {
	case minutes%1440 == 0:
		return fmt.Sprintf("-P%dD", minutes/1440)
	case minutes%60 == 0:
		return fmt.Sprintf("-PT%dH", minutes/60)
	default:
		return fmt.Sprintf("-PT%dM", minutes)
	}
}
