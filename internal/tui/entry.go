package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/charmbracelet/bubbles/list"
)

// bookEntry adapts a shelf item to the bubbles list.
type bookEntry struct {
	item shelf.Item
}

// FilterValue implements list.Item. Filtering matches on the lowercased
// title only, never on ids or page counts.
func (e bookEntry) FilterValue() string {
	return e.item.FilterKey()
}

// SubstringFilter ranks entries whose filter value contains the term as
// a plain case-insensitive substring. Shelf order is preserved; entries
// that do not match are hidden rather than re-ranked.
func SubstringFilter(term string, targets []string) []list.Rank {
	q := strings.ToLower(strings.TrimSpace(term))
	ranks := make([]list.Rank, 0, len(targets))
	for i, target := range targets {
		if q == "" {
			ranks = append(ranks, list.Rank{Index: i})
			continue
		}
		pos := strings.Index(strings.ToLower(target), q)
		if pos < 0 {
			continue
		}
		// Matched indexes are rune offsets of the matched span.
		start := len([]rune(target[:pos]))
		matched := make([]int, 0, len([]rune(q)))
		for j := 0; j < len([]rune(q)); j++ {
			matched = append(matched, start+j)
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}

// renderBookEntry renders one shelf row: title, a small per-row
// progress bar, and the formatted percent label.
func renderBookEntry(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(bookEntry)
	if !ok {
		return
	}

	title := entry.item.Title
	bar := rowBar.ViewAs(entry.item.Percent / 100)
	tag := StyleMeta.Render(progress.Format(entry.item.Percent))

	if index == m.Index() {
		_, _ = fmt.Fprintf(w, "%s %s %s", StyleHighlight.Render("› "+title), bar, tag)
	} else {
		_, _ = fmt.Fprintf(w, "  %s %s %s", StyleNormal.Render(title), bar, tag)
	}
}
