// Package picker holds the shared plumbing for the one-shot selection
// screens: the hub menu and the pinned-shelf picker.
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectHandler is called when an item is chosen. Return true to quit
// the picker with that item as the result.
type SelectHandler func(selected list.Item) bool

// Config configures a base picker.
type Config struct {
	// List is the underlying bubbles list.Model
	List list.Model

	QuitKeys   key.Binding
	SelectKeys key.Binding

	// OnSelect is called when SelectKeys is pressed on an item.
	OnSelect SelectHandler

	BorderStyle lipgloss.Style
	ShowBorder  bool
}

// Base carries the state every picker shares: the list, whether the
// picker has finished, and how it ended. Embed it and delegate Update
// and View to it.
type Base struct {
	config   Config
	list     list.Model
	quitting bool
	err      error
}

// New creates a new base picker.
func New(cfg Config) *Base {
	return &Base{
		config: cfg,
		list:   cfg.List,
	}
}

// IsQuitting returns whether the picker is quitting.
func (b *Base) IsQuitting() bool {
	return b.quitting
}

// Error returns the cancellation error, nil when an item was chosen.
func (b *Base) Error() error {
	return b.err
}

// SelectedItem returns the item under the cursor.
func (b *Base) SelectedItem() list.Item {
	return b.list.SelectedItem()
}

// Update handles quit and select keys, resizing, and list navigation.
func (b *Base) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The list owns every key while its filter prompt is active.
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.config.QuitKeys):
			b.err = fmt.Errorf("canceled by user")
			b.quitting = true
			return tea.Quit

		case key.Matches(msg, b.config.SelectKeys):
			if b.config.OnSelect == nil {
				break
			}
			selected := b.list.SelectedItem()
			if selected != nil && b.config.OnSelect(selected) {
				b.quitting = true
				return tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		if b.config.ShowBorder {
			h, v := b.config.BorderStyle.GetFrameSize()
			b.list.SetSize(msg.Width-h, msg.Height-v)
		} else {
			b.list.SetSize(msg.Width, msg.Height)
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

// View renders the picker, optionally inside its border.
func (b *Base) View() string {
	if b.quitting {
		return ""
	}

	view := b.list.View()
	if b.config.ShowBorder {
		return b.config.BorderStyle.Render(view)
	}
	return view
}
