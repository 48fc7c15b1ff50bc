package repository

import "fmt"

// PersistenceError is returned when a repository write cannot be completed:
// the store rejected the write or the record could not be serialized. Reads
// never produce it; read failures degrade to empty results instead.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
