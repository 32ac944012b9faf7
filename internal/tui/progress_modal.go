package tui

import (
	"strconv"
	"strings"

	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressAction is what the browser should do after a modal keypress.
type progressAction int

const (
	progressNone progressAction = iota
	progressCancel
	progressSubmit
)

// progressModal edits one book's reading progress. A fresh modal is
// built per open so stale input never leaks between books.
type progressModal struct {
	item       shelf.Item
	mode       progress.Mode
	input      textinput.Model
	errMsg     string
	committing bool
}

// newProgressModal seeds the input from the book's current progress.
// In pages mode the seed is the equivalent page number; books without a
// page count fall back to percent input.
func newProgressModal(item shelf.Item, mode progress.Mode) progressModal {
	if mode == progress.ModePages && item.PageCount <= 0 {
		mode = progress.ModePercent
	}

	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 10
	ti.Focus()
	switch mode {
	case progress.ModePages:
		ti.Placeholder = "pages read"
		ti.SetValue(strconv.Itoa(progress.PagesFromPercent(item.Percent, item.PageCount)))
	default:
		ti.Placeholder = "0-100"
		ti.SetValue(strconv.FormatFloat(item.Percent, 'f', -1, 64))
	}
	ti.CursorEnd()

	return progressModal{item: item, mode: mode, input: ti}
}

// Update handles one keypress. When the input validates on enter, the
// returned action is progressSubmit and percent carries the new value;
// the caller owns the network call. Keys are ignored while a previous
// submit is still in flight.
func (p *progressModal) Update(msg tea.KeyMsg) (progressAction, float64, tea.Cmd) {
	if p.committing {
		return progressNone, 0, nil
	}

	switch msg.String() {
	case "esc", "ctrl+c":
		return progressCancel, 0, nil

	case "enter":
		percent, err := p.validate()
		if err != nil {
			p.errMsg = err.Error()
			return progressNone, 0, nil
		}
		p.errMsg = ""
		p.committing = true
		return progressSubmit, percent, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return progressNone, 0, cmd
}

func (p *progressModal) validate() (float64, error) {
	raw := strings.TrimSpace(p.input.Value())
	if p.mode == progress.ModePages {
		pages, err := progress.ValidatePages(raw, p.item.PageCount)
		if err != nil {
			return 0, err
		}
		return progress.FromPages(pages, p.item.PageCount), nil
	}
	return progress.ValidatePercent(raw)
}

func (p progressModal) View(width, height int) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Update Progress"))
	b.WriteString("\n")
	b.WriteString(StyleNormal.Render(p.item.Title))
	b.WriteString("\n\n")

	prompt := "Percent complete:"
	if p.mode == progress.ModePages {
		prompt = "Pages read (of " + strconv.Itoa(p.item.PageCount) + "):"
	}
	b.WriteString(StyleMeta.Render(prompt))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if p.errMsg != "" {
		b.WriteString(StyleError.Render(p.errMsg))
		b.WriteString("\n")
	}
	if p.committing {
		b.WriteString(StyleHelp.Render("Saving..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("enter save • esc cancel"))

	box := StyleBorder.Padding(1, 2).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
