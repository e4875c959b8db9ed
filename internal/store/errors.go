// Package store holds the in-memory profile and career entries and writes every
// mutation through to persistence.
package store

import "fmt"

// PersistError reports a mutation that was applied in memory but could not be saved.
// The in-memory state is not rolled back.
type PersistError struct {
	Op    string
	Cause error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist error: %s: %v", e.Op, e.Cause)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}
