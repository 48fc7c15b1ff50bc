// Package store provides the key-value persistence primitive the planner's
// repositories are built on.
//
// A Store is a flat space of string keys mapping to serialized blobs, with
// atomicity per key and no transactions across keys. Three backends are
// provided: File (one JSON file per key under a data directory), SQLite
// (a single kv table in one database file), and Memory (a map, for tests
// and throwaway sessions).
package store
