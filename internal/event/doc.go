// Package event defines the planner's Event model and its calendar-day
// arithmetic.
//
// An Event is a user-created occurrence with a time span, optional
// description/location, and an enumerated reminder lead time. Day-level
// grouping (which events are "on" a given date, which are upcoming) is done
// with local calendar-day components rather than fixed 24-hour windows so
// that grouping stays correct across DST transitions.
package event
