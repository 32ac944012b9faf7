package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders a single list row. It receives the writer, the
// list model, the row index, and the item itself.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a single-line list delegate with pluggable rendering. The
// book rows, hub entries, and shelf picker all differ only in how a
// row is drawn, so height, spacing, and update live here once.
type Base struct {
	renderFn RenderFunc
}

// New creates a delegate that draws each row with renderFn.
func New(renderFn RenderFunc) Base {
	return Base{renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return 1 }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return 0 }

// Update implements list.ItemDelegate. Rows here never react to
// messages themselves.
func (d Base) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
