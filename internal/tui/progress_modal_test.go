package tui

import (
	"strings"
	"testing"

	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func typeInto(t *testing.T, p *progressModal, s string) {
	t.Helper()
	for _, r := range s {
		action, _, _ := p.Update(keyRunes(string(r)))
		if action != progressNone {
			t.Fatalf("typing %q triggered action %v", r, action)
		}
	}
}

func clearInput(p *progressModal) {
	for range p.input.Value() {
		p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestProgressModal_SeedsFromCurrentPercent(t *testing.T) {
	item := shelf.Item{Title: "Dune", Percent: 42.5, PageCount: 412}
	p := newProgressModal(item, progress.ModePercent)
	if got := p.input.Value(); got != "42.5" {
		t.Fatalf("seed = %q, want %q", got, "42.5")
	}
}

func TestProgressModal_SeedsPagesFromPercent(t *testing.T) {
	item := shelf.Item{Title: "Dune", Percent: 50, PageCount: 412}
	p := newProgressModal(item, progress.ModePages)
	if got := p.input.Value(); got != "206" {
		t.Fatalf("seed = %q, want %q", got, "206")
	}
}

func TestProgressModal_PagesModeFallsBackWithoutPageCount(t *testing.T) {
	item := shelf.Item{Title: "Dune", Percent: 30}
	p := newProgressModal(item, progress.ModePages)
	if p.mode != progress.ModePercent {
		t.Fatalf("mode = %v, want fallback to percent", p.mode)
	}
	if got := p.input.Value(); got != "30" {
		t.Fatalf("seed = %q, want %q", got, "30")
	}
}

func TestProgressModal_FreshSeedPerOpen(t *testing.T) {
	// Each open builds a new modal, so edits from a previous book can
	// never leak into the next one.
	first := newProgressModal(shelf.Item{Title: "A", Percent: 10}, progress.ModePercent)
	clearInput(&first)
	typeInto(t, &first, "95")

	second := newProgressModal(shelf.Item{Title: "B", Percent: 20}, progress.ModePercent)
	if got := second.input.Value(); got != "20" {
		t.Fatalf("second open seeded %q, want %q", got, "20")
	}
}

func TestProgressModal_RejectsOutOfRange(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 0}, progress.ModePercent)
	clearInput(&p)
	typeInto(t, &p, "150")

	action, _, _ := p.Update(keyEnter())
	if action != progressNone {
		t.Fatalf("action = %v, want none on invalid input", action)
	}
	if p.errMsg != string(progress.ErrOutOfRange) {
		t.Fatalf("errMsg = %q, want %q", p.errMsg, progress.ErrOutOfRange)
	}
	if p.committing {
		t.Fatal("invalid input must not start a commit")
	}
}

func TestProgressModal_SubmitValidPercent(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 10}, progress.ModePercent)
	clearInput(&p)
	typeInto(t, &p, "57.5")

	action, percent, _ := p.Update(keyEnter())
	if action != progressSubmit {
		t.Fatalf("action = %v, want submit", action)
	}
	if percent != 57.5 {
		t.Fatalf("percent = %v, want 57.5", percent)
	}
	if !p.committing {
		t.Fatal("submit must mark the modal committing")
	}
}

func TestProgressModal_PagesConvertToPercent(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 0, PageCount: 200}, progress.ModePages)
	clearInput(&p)
	typeInto(t, &p, "50")

	action, percent, _ := p.Update(keyEnter())
	if action != progressSubmit {
		t.Fatalf("action = %v, want submit", action)
	}
	if percent != 25 {
		t.Fatalf("percent = %v, want 25", percent)
	}
}

func TestProgressModal_IgnoresKeysWhileCommitting(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 10}, progress.ModePercent)
	clearInput(&p)
	typeInto(t, &p, "80")
	if action, _, _ := p.Update(keyEnter()); action != progressSubmit {
		t.Fatal("setup: first enter should submit")
	}

	// A second enter while in flight must not resubmit.
	if action, _, _ := p.Update(keyEnter()); action != progressNone {
		t.Fatal("enter during commit must be ignored")
	}
	if action, _, _ := p.Update(keyEsc()); action != progressNone {
		t.Fatal("esc during commit must be ignored")
	}
}

func TestProgressModal_EscCancels(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 10}, progress.ModePercent)
	action, _, _ := p.Update(keyEsc())
	if action != progressCancel {
		t.Fatalf("action = %v, want cancel", action)
	}
}

func TestProgressModal_ViewShowsValidationMessage(t *testing.T) {
	p := newProgressModal(shelf.Item{Title: "A", Percent: 0}, progress.ModePercent)
	clearInput(&p)
	typeInto(t, &p, "abc")
	p.Update(keyEnter())

	view := p.View(80, 24)
	if !strings.Contains(view, "valid percentage") {
		t.Fatalf("view does not show the validation message:\n%s", view)
	}
}
