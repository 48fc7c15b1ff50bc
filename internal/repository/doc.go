// Package repository mediates all persistence of events and settings
// against an injected key-value store.
//
// Two fixed keys hold the whole state: "@planner_events" (a JSON array of
// events) and "@planner_settings" (a JSON object). The error policy is
// asymmetric on purpose: reads swallow failures and degrade to empty or
// default results so the caller can always render something, while writes
// surface a *PersistenceError for the caller to report. Lookups that find
// nothing are not errors.
package repository
