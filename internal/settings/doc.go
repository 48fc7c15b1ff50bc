// Package settings defines the planner's global preferences record:
// theme, first day of week, and the notification toggle.
//
// The record is a singleton with lazily materialized defaults: a read always
// yields a complete record even when nothing (or only part of the schema)
// has been stored, because stored fields are merged onto Default().
package settings
