// Package persistence saves and loads the profile and career entries to durable slots.
package persistence

import "fmt"

// SaveError reports the slot that could not be written
type SaveError struct {
	Key   string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save error: slot %s: %v", e.Key, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// LoadError reports a slot that could not be read or decoded. The slot's data is
// treated as absent.
type LoadError struct {
	Key     string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: slot %s: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: slot %s: %s", e.Key, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
