package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fetch layer. Each kind is terminal for the load
// attempt it came from and maps to exactly one fixed UI message (see
// Message).
var (
	// ErrNoSelection is returned when no shelf or list was selected; no
	// network call is made.
	ErrNoSelection = errors.New("no list selected")
	// ErrUnauthenticated is returned when no bearer token is available;
	// no network call is made.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrForbidden is returned on a 403: the list belongs to someone else.
	ErrForbidden = errors.New("access to this list is forbidden")
	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("list not found")
	// ErrTransport wraps network-level failures (refused connection,
	// timeout) before any status code was received.
	ErrTransport = errors.New("network failure")
)

// StatusError is returned for non-success statuses outside the mapped
// set.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: status %d", e.Status)
}
