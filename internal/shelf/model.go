// Package shelf models a user's named book lists as returned by the
// remote API, and normalizes their optional fields at the boundary.
package shelf

import (
	"net/url"
	"strconv"
)

// Item is one book entry on a shelf. All metadata beyond the title is
// optional in the API payload; zero values mean "absent".
type Item struct {
	Title     string  `json:"title"`
	WorkID    int64   `json:"work_id,omitempty"`
	EditionID int64   `json:"edition_id,omitempty"`
	CoverURL  string  `json:"cover_url,omitempty"`
	PageCount int     `json:"page_count,omitempty"`
	Percent   float64 `json:"progress_percent,omitempty"`
}

// Shelf is a named, ordered collection of books. Item order is the
// server's; the client never re-sorts.
type Shelf struct {
	Name  string `json:"name,omitempty"`
	Items []Item `json:"items"`
}

// DefaultTitle is shown for items the API returned without a title.
const DefaultTitle = "Untitled"

// Normalize applies the documented defaulting rules to a decoded item:
// missing titles become DefaultTitle, non-positive page counts mean
// "unknown", and the progress percent is clamped to [0,100].
func (it *Item) Normalize() {
	if it.Title == "" {
		it.Title = DefaultTitle
	}
	if it.PageCount < 0 {
		it.PageCount = 0
	}
	if it.Percent < 0 {
		it.Percent = 0
	}
	if it.Percent > 100 {
		it.Percent = 100
	}
}

// Normalize normalizes every item and guarantees a non-nil item slice.
func (s *Shelf) Normalize() {
	if s.Items == nil {
		s.Items = []Item{}
	}
	for i := range s.Items {
		s.Items[i].Normalize()
	}
}

// Navigable reports whether the item carries an identifier usable for
// navigation to its detail page.
func (it Item) Navigable() bool {
	return it.EditionID != 0 || it.WorkID != 0
}

// Key returns a stable identifier for progress and rating submission:
// the edition when present, otherwise the work. Empty for items with
// neither.
func (it Item) Key() string {
	switch {
	case it.EditionID != 0:
		return "edition:" + strconv.FormatInt(it.EditionID, 10)
	case it.WorkID != 0:
		return "work:" + strconv.FormatInt(it.WorkID, 10)
	default:
		return ""
	}
}

// DetailURL builds the item's detail-page link from basePath, preferring
// the edition id over the work id as the query parameter. Returns ""
// for non-navigable items.
func (it Item) DetailURL(basePath string) string {
	qp := url.Values{}
	switch {
	case it.EditionID != 0:
		qp.Set("edition_id", strconv.FormatInt(it.EditionID, 10))
	case it.WorkID != 0:
		qp.Set("work_id", strconv.FormatInt(it.WorkID, 10))
	default:
		return ""
	}
	return basePath + "?" + qp.Encode()
}
