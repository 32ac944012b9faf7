package tui

import "github.com/charmbracelet/bubbles/key"

// StandardKeys defines common key bindings used across TUI components.
type StandardKeys struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
}

// NewStandardKeys creates a standard set of key bindings.
func NewStandardKeys() StandardKeys {
	return StandardKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "h"),
			key.WithHelp("backspace", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// PickerKeys are the standard keys for picker components (list selection).
type PickerKeys struct {
	Quit   key.Binding
	Select key.Binding
}

// NewPickerKeys creates key bindings for picker components.
func NewPickerKeys() PickerKeys {
	std := NewStandardKeys()
	return PickerKeys{
		Quit:   std.Quit,
		Select: std.Select,
	}
}

// ShortHelp returns a slice of key bindings for the short help view.
func (k PickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// browserKeys are the shortcuts of the shelf browser.
type browserKeys struct {
	quit     key.Binding
	open     key.Binding
	progress key.Binding
	filter   key.Binding
	switchTo key.Binding
	reload   key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open book page"),
		),
		progress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "update progress"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		switchTo: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list"),
		),
		reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
	}
}
