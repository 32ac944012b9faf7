package tui

import (
	"testing"

	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
)

func targets(titles ...string) []string {
	out := make([]string, len(titles))
	for i, title := range titles {
		out[i] = (bookEntry{item: shelf.Item{Title: title}}).FilterValue()
	}
	return out
}

func TestSubstringFilter_EmptyTermMatchesAll(t *testing.T) {
	ts := targets("Dune", "Hyperion", "Foundation")
	ranks := SubstringFilter("", ts)
	if len(ranks) != 3 {
		t.Fatalf("got %d ranks, want 3", len(ranks))
	}
	for i, r := range ranks {
		if r.Index != i {
			t.Errorf("rank %d has index %d, order not preserved", i, r.Index)
		}
	}
}

func TestSubstringFilter_CaseInsensitiveSubstring(t *testing.T) {
	ts := targets("The Left Hand of Darkness", "A Wizard of Earthsea", "The Dispossessed")

	ranks := SubstringFilter("HAND", ts)
	if len(ranks) != 1 || ranks[0].Index != 0 {
		t.Fatalf("HAND: got %+v, want single match at index 0", ranks)
	}

	// Mid-word substrings match too; this is not fuzzy or prefix search.
	ranks = SubstringFilter("izar", ts)
	if len(ranks) != 1 || ranks[0].Index != 1 {
		t.Fatalf("izar: got %+v, want single match at index 1", ranks)
	}
}

func TestSubstringFilter_PreservesShelfOrder(t *testing.T) {
	ts := targets("Blue Mars", "Red Mars", "Green Mars")
	ranks := SubstringFilter("mars", ts)
	if len(ranks) != 3 {
		t.Fatalf("got %d ranks, want 3", len(ranks))
	}
	for i, r := range ranks {
		if r.Index != i {
			t.Errorf("rank %d has index %d; matches must keep shelf order", i, r.Index)
		}
	}
}

func TestSubstringFilter_NoMatchHidesEntry(t *testing.T) {
	ts := targets("Dune")
	if ranks := SubstringFilter("xyzzy", ts); len(ranks) != 0 {
		t.Fatalf("got %+v, want no ranks", ranks)
	}
}

func TestSubstringFilter_TrimsWhitespace(t *testing.T) {
	ts := targets("Dune")
	if ranks := SubstringFilter("  dune  ", ts); len(ranks) != 1 {
		t.Fatalf("got %+v, want one rank", ranks)
	}
}
