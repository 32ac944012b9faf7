package tui

import "github.com/beyond-the-bookshelf/btbctl/internal/shelf"

// shelfLoadedMsg carries the result of a shelf load. seq identifies the
// request that produced it; results from superseded requests are discarded.
type shelfLoadedMsg struct {
	seq   int
	shelf *shelf.Shelf
	err   error
}

// coverFetchedMsg carries a cached cover image path for one book.
type coverFetchedMsg struct {
	key  string
	path string
	err  error
}

// progressSavedMsg carries the outcome of a best-effort progress POST.
type progressSavedMsg struct {
	key     string
	percent float64
	err     error
}

// ratingSavedMsg carries the result of a rating submission.
type ratingSavedMsg struct {
	key   string
	stars int
	err   error
}
