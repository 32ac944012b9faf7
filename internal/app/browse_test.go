package app

import (
	"testing"

	"github.com/beyond-the-bookshelf/btbctl/internal/config"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestResolveSelector_WellKnownLists(t *testing.T) {
	withConfig(t, &config.Config{})

	sel, err := resolveSelector("reading", "")
	if err != nil {
		t.Fatal(err)
	}
	if sel.Kind != shelf.ListReading {
		t.Fatalf("sel = %+v, want reading list", sel)
	}

	sel, err = resolveSelector("completed", "")
	if err != nil {
		t.Fatal(err)
	}
	if sel.Kind != shelf.ListCompleted {
		t.Fatalf("sel = %+v, want completed list", sel)
	}

	if _, err := resolveSelector("archived", ""); err == nil {
		t.Fatal("unknown list name must be rejected")
	}
}

func TestResolveSelector_ShelfFlagWins(t *testing.T) {
	withConfig(t, &config.Config{
		Shelves: []config.ShelfConfig{{ID: "42", Name: "sci-fi"}},
	})

	// Pinned name resolves to its configured id.
	sel, err := resolveSelector("reading", "sci-fi")
	if err != nil {
		t.Fatal(err)
	}
	if sel.ShelfID != "42" || sel.Kind != "" {
		t.Fatalf("sel = %+v, want shelf 42", sel)
	}

	// Anything else passes through as a raw id.
	sel, err = resolveSelector("reading", "7")
	if err != nil {
		t.Fatal(err)
	}
	if sel.ShelfID != "7" {
		t.Fatalf("sel = %+v, want shelf 7", sel)
	}
}

func TestListOptions_IncludesPinnedShelves(t *testing.T) {
	withConfig(t, &config.Config{
		Shelves: []config.ShelfConfig{
			{ID: "42", Name: "sci-fi"},
			{ID: "43"},
		},
	})

	opts := listOptions()
	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4", len(opts))
	}
	if opts[0].Selector.Kind != shelf.ListReading || opts[1].Selector.Kind != shelf.ListCompleted {
		t.Fatal("well-known lists must come first")
	}
	if opts[2].Label != "sci-fi" || opts[2].Selector.ShelfID != "42" {
		t.Fatalf("opts[2] = %+v, want the named pinned shelf", opts[2])
	}
	if opts[3].Label != "Shelf 43" {
		t.Fatalf("opts[3].Label = %q, want fallback label", opts[3].Label)
	}
}
