package shelf

// ListKind names a well-known list the API serves without an explicit
// shelf id.
type ListKind string

// Well-known list kinds.
const (
	ListReading   ListKind = "reading"
	ListCompleted ListKind = "completed"
)

// Selector identifies which list to load: an explicit shelf id, or a
// well-known kind. The zero Selector selects nothing.
type Selector struct {
	ShelfID string
	Kind    ListKind
}

// IsZero reports whether the selector selects nothing.
func (s Selector) IsZero() bool {
	return s.ShelfID == "" && s.Kind == ""
}

// Title returns a human heading for the selection, used until the API
// reports the shelf's own name.
func (s Selector) Title() string {
	switch {
	case s.ShelfID != "":
		return "Shelf " + s.ShelfID
	case s.Kind == ListReading:
		return "Currently Reading"
	case s.Kind == ListCompleted:
		return "Completed"
	default:
		return ""
	}
}
