package event

import "time"

// SameDay reports whether a and b fall on the same calendar day. The
// calendar is b's location: a is converted into it before the year/month/day
// components are compared, so a timestamp stored as UTC (the wire form) and
// a local query date agree on day membership. Day membership is a calendar
// question, not a fixed 24h window: around DST transitions the two give
// different answers and the calendar one is correct.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight at the start of t's calendar day, in t's
// location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// OnDay reports whether the event starts on the same calendar day as date,
// in date's location. The stored start time may carry any offset (existing
// data is written as UTC); the query date decides the calendar.
func (e *Event) OnDay(date time.Time) bool {
	return SameDay(e.StartDate, date)
}

// StartsOnOrAfterDay reports whether the event starts on or after the
// calendar day containing ref. An event earlier today still counts.
func (e *Event) StartsOnOrAfterDay(ref time.Time) bool {
	return !e.StartDate.Before(StartOfDay(ref))
}
