// Package export produces point-in-time snapshots of the profile and career entries
// and delivers them to a file, a writer or an S3 bucket.
package export

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned for an export format other than json or yaml
var ErrUnknownFormat = errors.New("unknown export format")

// SinkError reports a failure to deliver an encoded snapshot
type SinkError struct {
	Name  string
	Cause error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("export error: %s: %v", e.Name, e.Cause)
}

func (e *SinkError) Unwrap() error {
	return e.Cause
}
