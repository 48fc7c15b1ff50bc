package repository

import (
	"encoding/json"
	"sort"
	"time"

	"planner/internal/event"
	"planner/internal/logger"
	"planner/internal/store"
)

// EventsKey is the store key holding the full event collection as a JSON
// array. The key (and the array's field names) are the persisted contract
// shared with existing stored data.
const EventsKey = "@planner_events"

// Events mediates all reads and writes of the event collection.
//
// Every operation is a full read-modify-write cycle against the store: the
// collection is re-read each call, mutated in memory, and written back as a
// single blob. There is no locking or versioning, so overlapping mutations
// from concurrent callers can clobber each other; with a single active
// caller (the usage pattern here) the window never matters.
type Events struct {
	store store.Store
}

// NewEvents creates an event repository backed by s.
func NewEvents(s store.Store) *Events {
	return &Events{store: s}
}

// ListAll returns every stored event in stored order. Reads fail soft: a
// missing key, an unreadable store, or a corrupt blob all yield an empty
// slice so callers can always render an empty state.
func (r *Events) ListAll() []*event.Event {
	data, ok, err := r.store.Read(EventsKey)
	if err != nil {
		logger.Warn("reading events failed, treating as empty", logger.Fields{
			"key": EventsKey, "error": err.Error(),
		})
		return []*event.Event{}
	}
	if !ok {
		return []*event.Event{}
	}

	var events []*event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("stored events are corrupt, treating as empty", logger.Fields{
			"key": EventsKey, "error": err.Error(),
		})
		return []*event.Event{}
	}
	if events == nil {
		events = []*event.Event{}
	}
	return events
}

// Save creates or updates evt, keyed by its ID. A new ID is appended with
// CreatedAt and UpdatedAt set to now; an existing ID is replaced in place,
// keeping its original CreatedAt and refreshing UpdatedAt. The full
// collection is persisted as one write. The new timestamps are written back
// onto evt only after the write succeeds; on failure the caller's record is
// left untouched.
func (r *Events) Save(evt *event.Event) error {
	events := r.ListAll()
	now := time.Now()

	saved := *evt
	saved.CreatedAt = now
	saved.UpdatedAt = now
	replaced := false
	for i, existing := range events {
		if existing.ID == saved.ID {
			saved.CreatedAt = existing.CreatedAt
			events[i] = &saved
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, &saved)
	}

	if err := r.persist("saving event", events); err != nil {
		return err
	}

	evt.CreatedAt = saved.CreatedAt
	evt.UpdatedAt = saved.UpdatedAt
	return nil
}

// DeleteByID removes the event with the given ID and persists the result.
// Deleting an absent ID is a no-op, not an error.
func (r *Events) DeleteByID(id string) error {
	events := r.ListAll()
	kept := events[:0]
	for _, evt := range events {
		if evt.ID != id {
			kept = append(kept, evt)
		}
	}
	return r.persist("deleting event", kept)
}

// GetByID returns the event with the given ID. Absence is not an error:
// ok is false both when the ID is unknown and when the collection could not
// be read, matching ListAll's soft-fail policy.
func (r *Events) GetByID(id string) (*event.Event, bool) {
	for _, evt := range r.ListAll() {
		if evt.ID == id {
			return evt, true
		}
	}
	return nil, false
}

// GetByDate returns the events starting on the same local calendar day as
// date, in stored order.
func (r *Events) GetByDate(date time.Time) []*event.Event {
	matched := []*event.Event{}
	for _, evt := range r.ListAll() {
		if evt.OnDay(date) {
			matched = append(matched, evt)
		}
	}
	return matched
}

// Upcoming returns the events starting on or after the beginning of today,
// sorted ascending by start time.
func (r *Events) Upcoming() []*event.Event {
	return r.UpcomingAt(time.Now())
}

// UpcomingAt is Upcoming with an explicit reference time: events starting on
// or after the start of the calendar day containing ref, ascending by start
// time. Events earlier on ref's day still count. The sort is stable, so
// events sharing a start time keep their stored order.
func (r *Events) UpcomingAt(ref time.Time) []*event.Event {
	upcoming := []*event.Event{}
	for _, evt := range r.ListAll() {
		if evt.StartsOnOrAfterDay(ref) {
			upcoming = append(upcoming, evt)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	return upcoming
}

// persist serializes the collection and writes it back under EventsKey.
// Unlike reads, failures here surface to the caller as a *PersistenceError.
func (r *Events) persist(op string, events []*event.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return &PersistenceError{Op: op, Key: EventsKey, Err: err}
	}
	if err := r.store.Write(EventsKey, data); err != nil {
		return &PersistenceError{Op: op, Key: EventsKey, Err: err}
	}
	return nil
}
