package tui

import (
	"fmt"
	"io"

	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui/delegate"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui/picker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ListOption is one selectable list: a well-known kind or a pinned shelf.
type ListOption struct {
	Label    string
	Selector shelf.Selector
}

// FilterValue implements list.Item
func (o ListOption) FilterValue() string {
	return o.Label + " " + o.Selector.ShelfID
}

// renderListOption renders a list option in the picker
func renderListOption(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(ListOption)
	if !ok {
		return
	}

	display := opt.Label
	if opt.Selector.ShelfID != "" {
		display = fmt.Sprintf("%s (%s)", opt.Label, StyleHelp.Render("shelf "+opt.Selector.ShelfID))
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type listPickerModel struct {
	base     *picker.Base
	selected shelf.Selector
}

func (m listPickerModel) Init() tea.Cmd {
	return nil
}

func (m listPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.base.Update(msg)

	if m.base.IsQuitting() && m.base.Error() == nil {
		if item, ok := m.base.SelectedItem().(ListOption); ok {
			m.selected = item.Selector
		}
	}

	return m, cmd
}

func (m listPickerModel) View() string {
	return m.base.View()
}

// RunListPicker launches an interactive list selector.
// Returns the chosen selector, or an error if canceled.
func RunListPicker(options []ListOption) (shelf.Selector, error) {
	if len(options) == 0 {
		return shelf.Selector{}, fmt.Errorf("no lists to choose from")
	}

	if len(options) == 1 {
		return options[0].Selector, nil
	}

	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = o
	}

	d := delegate.New(renderListOption)
	l := list.New(items, d, 0, 0)
	l.Title = "Select List"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()

	base := picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
		OnSelect: func(item list.Item) bool {
			return true // quit after selection
		},
	})

	m := listPickerModel{base: base}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return shelf.Selector{}, fmt.Errorf("running list picker: %w", err)
	}

	fm, ok := finalModel.(listPickerModel)
	if !ok {
		return shelf.Selector{}, fmt.Errorf("unexpected model type")
	}

	if fm.base.Error() != nil {
		return shelf.Selector{}, fm.base.Error()
	}

	return fm.selected, nil
}
