package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui/delegate"
	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	// detailsPaneWidth is the fixed width of the right-hand details pane.
	detailsPaneWidth = 36
	// detailsPaneMin is the terminal width below which the details pane
	// is dropped entirely.
	detailsPaneMin = 80

	progressBarWidth = 28
)

// rowBar is the compact per-row bar shared by the list delegate.
// ViewAs does not mutate, so one instance serves every row.
var rowBar = progressbar.New(
	progressbar.WithDefaultGradient(),
	progressbar.WithWidth(12),
	progressbar.WithoutPercentage(),
)

func newBookDelegate() delegate.Base {
	return delegate.New(renderBookEntry)
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.modal {
	case modalProgress:
		return m.progress.View(m.width, m.height)
	case modalRating:
		return m.rating.View(m.width, m.height)
	}

	var body string
	switch {
	case m.loading:
		body = StyleHelp.Render("Loading " + m.sel.Title() + "...")
	case m.loadErr != "":
		body = StyleError.Render(m.loadErr)
	case m.shelf != nil && len(m.shelf.Items) == 0:
		body = StyleHelp.Render(api.EmptyShelfMessage)
	default:
		body = m.list.View()
		if m.width > detailsPaneMin {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderDetails())
		}
	}

	footer := RenderFooterBar([]ShortcutEntry{
		{Key: "o", Label: "enter open"},
		{Key: "p", Label: "p progress"},
		{Key: "", Label: "/ filter"},
		{Key: "", Label: "tab switch"},
		{Key: "", Label: "R reload"},
		{Key: "", Label: "q quit"},
	}, m.activeCmd)

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderDetails renders the right-hand pane for the book under the
// cursor: cover, title, page count, progress bar with its percent label.
func (m BrowserModel) renderDetails() string {
	item, ok := m.selectedItem()
	if !ok {
		return ""
	}

	var b strings.Builder

	if m.imgProto != ProtocolNone {
		if path, ok := m.coverPaths[item.Key()]; ok {
			if data, err := os.ReadFile(path); err == nil {
				b.WriteString(RenderInlineImageBytes(data, m.imgProto))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(StyleHeader.Render(item.Title))
	b.WriteString("\n")
	if item.PageCount > 0 {
		b.WriteString(StyleMeta.Render(fmt.Sprintf("%d pages", item.PageCount)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderProgressBar(item.Percent))

	return StyleBorder.
		Width(detailsPaneWidth - 4).
		Padding(0, 1).
		Render(b.String())
}

// renderProgressBar draws the bar with the percent label on top. Past
// the light-label threshold the label sits on the filled portion and
// flips to the light treatment.
func renderProgressBar(percent float64) string {
	bar := progressbar.New(
		progressbar.WithDefaultGradient(),
		progressbar.WithWidth(progressBarWidth),
		progressbar.WithoutPercentage(),
	)

	label := progress.Format(percent)
	if progress.LightOnDark(percent) {
		label = StyleLabelLight.Render(label)
	} else {
		label = StyleLabelDark.Render(label)
	}

	return bar.ViewAs(percent/100) + " " + label
}
