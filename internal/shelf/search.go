package shelf

import "strings"

// FilterKey returns the value an entry is matched against when the user
// types into the search filter: the lower-cased title, captured once at
// render time.
func (it Item) FilterKey() string {
	return strings.ToLower(it.Title)
}

// MatchesQuery reports whether a stored filter key matches the query:
// case-insensitive substring containment, with the empty query matching
// everything. Filtering hides entries, it never removes or reorders them,
// so applying the same query twice (or clearing it) is stable.
func MatchesQuery(filterKey, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(filterKey, q)
}
