package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a single-row read matches nothing.
var ErrNotFound = errors.New("row not found")

// RequestError is any non-2xx response from the data API that is not a
// missing-row condition.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("store request failed: status=%d body=%s", e.Status, e.Body)
}

// IsRejectedWrite reports whether err is the store refusing a write
// (constraint violation, malformed payload, row-level policy denial).
func IsRejectedWrite(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	switch reqErr.Status {
	case 400, 403, 409, 422:
		return true
	}
	return false
}
