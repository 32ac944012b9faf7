package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how the edit modal interprets user input.
type Mode string

// Input modes.
const (
	ModePercent Mode = "percent"
	ModePages   Mode = "pages"
)

// ValidationError is a user-correctable input error. It stays local to the
// edit modal: the modal shows the message and remains open.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Fixed validation messages.
var (
	// ErrOutOfRange rejects percentage input outside [0,100].
	ErrOutOfRange = ValidationError("Please enter a valid percentage between 0 and 100.")
	// ErrMissingPageCount rejects page-based input for a book with no
	// known page total.
	ErrMissingPageCount = ValidationError("This book has no page count on record.")
)

// ValidatePercent parses raw as a percentage in [0,100].
func ValidatePercent(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, ErrOutOfRange
	}
	return v, nil
}

// ValidatePages parses raw as a whole page count in [0,totalPages].
// A book without a known total cannot take page-based input.
func ValidatePages(raw string, totalPages int) (int, error) {
	if totalPages <= 0 {
		return 0, ErrMissingPageCount
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 || v > totalPages {
		return 0, ValidationError(fmt.Sprintf("Please enter a page number between 0 and %d.", totalPages))
	}
	return v, nil
}
