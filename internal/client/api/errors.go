package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: no HTTP response was
// received at all.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the server. Message carries the
// human-readable "message" field of the error body when the server sent one,
// otherwise it is empty and callers fall back to their own wording.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}
