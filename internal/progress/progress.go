// Package progress holds the pure arithmetic behind a book's completion
// state: page/percentage conversion, display formatting, and the
// completion-crossing rule that triggers the rating flow.
package progress

import (
	"math"
	"strconv"
	"strings"
)

// LightLabelThreshold is the percentage at which the rendered progress
// label switches from the dark-on-light to the light-on-dark treatment.
// Presentation contract, fixed.
const LightLabelThreshold = 25.0

// FromPages derives a percentage from pages read against a known total.
// The result is exact (no display rounding applied). totalPages must be
// positive; callers validate with ValidatePages first.
func FromPages(pagesRead, totalPages int) float64 {
	return float64(pagesRead) / float64(totalPages) * 100
}

// PagesFromPercent converts a known percentage to the nearest whole page
// against a total. Used to seed the page-mode edit field.
func PagesFromPercent(percent float64, totalPages int) int {
	return int(math.Round(percent / 100 * float64(totalPages)))
}

// Format renders a percentage for display: one decimal place when the
// value is non-integral, none when it is whole. The "%" suffix is
// included ("57.6%", "100%"). Rounding is half-up on the decimal
// representation so that an entered 57.55 displays as 57.6 even though
// float64 stores it as 57.549999….
func Format(percent float64) string {
	if percent == math.Trunc(percent) {
		return strconv.FormatFloat(percent, 'f', 0, 64) + "%"
	}
	s := strconv.FormatFloat(percent, 'f', 2, 64)
	keep, last := s[:len(s)-1], s[len(s)-1]
	if last >= '5' {
		keep = incrementDecimal(keep)
	}
	return keep + "%"
}

// incrementDecimal adds one to the last digit of a decimal string,
// carrying leftward across the point ("57.9" -> "58.0", "99.9" -> "100.0").
func incrementDecimal(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '.' {
			continue
		}
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// ParseDisplay parses a string produced by Format back into a value.
func ParseDisplay(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
}

// Crossed reports whether an update moved a book across the completion
// threshold: strictly below 100 before, at or above 100 after.
// Resubmitting an exact 100 does not count as crossing.
func Crossed(before, after float64) bool {
	return before < 100 && after >= 100
}

// LightOnDark reports whether the progress label at this percentage uses
// the light-on-dark treatment.
func LightOnDark(percent float64) bool {
	return percent >= LightLabelThreshold
}
