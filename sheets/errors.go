package sheets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a worksheet or named range does not
// exist where one was expected. Transports map their own not-found
// responses onto it.
var ErrNotFound = errors.New("not found")

// RangeSyncError wraps a transport failure while deleting or creating
// the named range for one header. It aborts the rest of the
// synchronization pass; ranges created earlier in the same pass remain
// persisted remotely.
type RangeSyncError struct {
	Header string
	Err    error
}

func (e *RangeSyncError) Error() string {
	return fmt.Sprintf("syncing named range for header %q: %v", e.Header, e.Err)
}

func (e *RangeSyncError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
