package store

// Memory is a map-backed Store. It backs tests and the throwaway
// `--store memory` mode; data lives only as long as the process.
type Memory struct {
	data map[string][]byte

	// ReadErr and WriteErr, when set, are returned by every Read/Write.
	// Tests use them to exercise failure paths.
	ReadErr  error
	WriteErr error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Read returns the blob for key, reporting ok=false if it was never written.
func (m *Memory) Read(key string) ([]byte, bool, error) {
	if m.ReadErr != nil {
		return nil, false, m.ReadErr
	}
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

// Write replaces the blob for key.
func (m *Memory) Write(key string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

// Put seeds a key directly, bypassing error injection. Test helper.
func (m *Memory) Put(key string, data []byte) {
	m.data[key] = data
}
