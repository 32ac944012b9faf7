package tui

import (
	"fmt"
	"io"

	"github.com/beyond-the-bookshelf/btbctl/internal/tui/delegate"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui/picker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// HubAction is what the user picked from the hub menu.
type HubAction string

// Hub menu actions.
const (
	HubBrowseReading   HubAction = "reading"
	HubBrowseCompleted HubAction = "completed"
	HubPickShelf       HubAction = "pick-shelf"
	HubWhoAmI          HubAction = "whoami"
	HubQuit            HubAction = "quit"
)

type hubEntry struct {
	action HubAction
	label  string
	hint   string
}

// FilterValue implements list.Item
func (e hubEntry) FilterValue() string {
	return e.label
}

func renderHubEntry(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(hubEntry)
	if !ok {
		return
	}

	if index == m.Index() {
		_, _ = fmt.Fprintf(w, "%s %s",
			StyleHighlight.Render("› "+entry.label),
			StyleHelp.Render(entry.hint))
	} else {
		_, _ = fmt.Fprintf(w, "  %s %s",
			StyleNormal.Render(entry.label),
			StyleHelp.Render(entry.hint))
	}
}

type hubModel struct {
	base   *picker.Base
	action HubAction
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.base.Update(msg)

	if m.base.IsQuitting() && m.base.Error() == nil {
		if entry, ok := m.base.SelectedItem().(hubEntry); ok {
			m.action = entry.action
		}
	}

	return m, cmd
}

func (m hubModel) View() string {
	return m.base.View()
}

// RunHub shows the main menu and returns the chosen action. Canceling
// with q or esc maps to HubQuit rather than an error.
func RunHub(hasShelves bool) (HubAction, error) {
	entries := []hubEntry{
		{HubBrowseReading, "Currently Reading", "browse the reading list"},
		{HubBrowseCompleted, "Completed", "browse finished books"},
	}
	if hasShelves {
		entries = append(entries, hubEntry{HubPickShelf, "Pick a Shelf", "browse a pinned shelf"})
	}
	entries = append(entries,
		hubEntry{HubWhoAmI, "Who Am I", "show the signed-in user"},
		hubEntry{HubQuit, "Quit", ""},
	)

	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	d := delegate.New(renderHubEntry)
	l := list.New(items, d, 0, 0)
	l.Title = "Beyond the Bookshelf"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()

	base := picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
		OnSelect: func(list.Item) bool {
			return true
		},
	})

	m := hubModel{base: base}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return HubQuit, fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return HubQuit, fmt.Errorf("unexpected model type")
	}

	if fm.base.Error() != nil {
		// Canceling the hub is just quitting.
		return HubQuit, nil
	}

	return fm.action, nil
}
