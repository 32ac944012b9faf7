package api

import "errors"

// Fixed presentation strings for the list area. The loader never throws
// past its boundary; callers translate its error into exactly one of
// these and render it in place of the list.
const (
	msgNoSelection     = "No list selected."
	msgUnauthenticated = "Please log in to view this list."
	msgForbidden       = "You don't have access to this list. Please log in as the correct user."
	msgNotFound        = "This list could not be found."
	msgServerError     = "Could not load books for this list."
	msgGeneric         = "Something went wrong loading this list."

	// EmptyShelfMessage is shown for a successful load with no items.
	// An empty shelf is a presentation state, not an error.
	EmptyShelfMessage = "There are no books on this list yet."
)

// Message maps a load error onto its fixed, human-readable message.
// Unclassified failures get the generic text rather than raw error
// details.
func Message(err error) string {
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrNoSelection):
		return msgNoSelection
	case errors.Is(err, ErrUnauthenticated):
		return msgUnauthenticated
	case errors.Is(err, ErrForbidden):
		return msgForbidden
	case errors.Is(err, ErrNotFound):
		return msgNotFound
	case errors.As(err, &statusErr):
		return msgServerError
	default:
		return msgGeneric
	}
}
