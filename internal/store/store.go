package store

// Store is the persistence primitive the repositories are built on: a flat
// key-value space of serialized blobs with single-key atomicity and nothing
// more. Backends are injected at construction so tests can swap in fakes.
type Store interface {
	// Read returns the blob stored under key. ok is false when the key has
	// never been written; that is not an error.
	Read(key string) (data []byte, ok bool, err error)

	// Write replaces the blob stored under key.
	Write(key string, data []byte) error
}
