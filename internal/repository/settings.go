package repository

import (
	"encoding/json"

	"planner/internal/logger"
	"planner/internal/settings"
	"planner/internal/store"
)

// SettingsKey is the store key holding the settings record as a JSON
// object. Part of the persisted contract.
const SettingsKey = "@planner_settings"

// Settings mediates reads and writes of the single global settings record.
type Settings struct {
	store store.Store
}

// NewSettings creates a settings repository backed by s.
func NewSettings(s store.Store) *Settings {
	return &Settings{store: s}
}

// Get reads the settings record, merging whatever is stored onto the
// defaults so the result is always complete: fields absent from stored data
// (including fields added to the schema after the data was written) come
// back as defaults. A missing or corrupt blob yields the defaults
// unchanged; Get never writes and never errors.
func (r *Settings) Get() settings.Settings {
	s := settings.Default()

	data, ok, err := r.store.Read(SettingsKey)
	if err != nil {
		logger.Warn("reading settings failed, using defaults", logger.Fields{
			"key": SettingsKey, "error": err.Error(),
		})
		return s
	}
	if !ok {
		return s
	}

	// Unmarshaling onto the default record is the shallow merge: stored
	// fields overwrite, absent fields keep their defaults.
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Warn("stored settings are corrupt, using defaults", logger.Fields{
			"key": SettingsKey, "error": err.Error(),
		})
		return settings.Default()
	}
	return s
}

// Save merges the patch over the current record (itself read with the
// merge-with-defaults rule) and persists the complete result. Write
// failures surface as a *PersistenceError.
func (r *Settings) Save(p settings.Patch) error {
	merged := r.Get().Apply(p)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "saving settings", Key: SettingsKey, Err: err}
	}
	if err := r.store.Write(SettingsKey, data); err != nil {
		return &PersistenceError{Op: "saving settings", Key: SettingsKey, Err: err}
	}
	return nil
}
