package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
)

// itemLimit caps how many items one load fetches.
const itemLimit = 100

// LoadShelf fetches the selected list's items and returns a normalized
// Shelf. It resolves exactly once per call — one attempt, no retries —
// and never panics past its boundary; callers observe only the returned
// error.
//
// Outcomes, in fixed priority order:
//  1. zero selector            -> ErrNoSelection, no network call
//  2. no bearer token          -> ErrUnauthenticated, no network call
//  3. transport failure        -> wrapped ErrTransport, logged
//  4. 403                      -> ErrForbidden
//  5. 404                      -> ErrNotFound
//  6. other non-success status -> *StatusError
//  7. success, zero items      -> empty Shelf, nil error
//  8. success                  -> normalized Shelf
func (c *Client) LoadShelf(ctx context.Context, sel shelf.Selector) (*shelf.Shelf, error) {
	if sel.IsZero() {
		return nil, ErrNoSelection
	}
	if !c.HasToken() {
		return nil, ErrUnauthenticated
	}

	var s shelf.Shelf
	if err := c.getJSON(ctx, c.shelfItemsURL(sel), &s); err != nil {
		return nil, err
	}
	s.Normalize()
	if s.Name == "" {
		s.Name = sel.Title()
	}
	return &s, nil
}

// shelfItemsURL builds the items endpoint for a selector: explicit shelf
// ids go through /api/home/shelves/{id}/items, well-known kinds through
// their named-list equivalents.
func (c *Client) shelfItemsURL(sel shelf.Selector) string {
	q := "?limit=" + strconv.Itoa(itemLimit)
	if sel.ShelfID != "" {
		return c.url("api", "home", "shelves", url.PathEscape(sel.ShelfID), "items") + q
	}
	name := "reading_list"
	if sel.Kind == shelf.ListCompleted {
		name = "completed_list"
	}
	return c.url("api", "home", name, "items") + q
}
