package tui

import (
	"strings"

	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxStars = 5

type ratingAction int

const (
	ratingNone ratingAction = iota
	ratingCancel
	ratingSubmit
)

// chooseStarPrompt is shown until a star is chosen; selectRatingError
// rejects a submit with nothing chosen.
const (
	chooseStarPrompt  = "Choose a star to rate this book."
	selectRatingError = "Please select a rating."
)

// ratingModal collects a 1-5 star rating. hover previews a value while
// the cursor sits on it; selected is what enter locked in. The filled
// prefix always reflects hover when present, otherwise selected, so
// moving the cursor away from a chosen star reverts the preview.
// Submission is fire-and-forget, so there is no in-flight state; the
// caller closes the modal the moment a rating is handed over.
type ratingModal struct {
	item     shelf.Item
	hover    int // star under cursor, 0 = none
	selected int // chosen star, 0 = none
	errMsg   string
}

func newRatingModal(item shelf.Item) ratingModal {
	return ratingModal{item: item, hover: 1}
}

// filled returns how many stars render as filled right now.
func (r ratingModal) filled() int {
	if r.hover > 0 {
		return r.hover
	}
	return r.selected
}

// Update handles one keypress. ratingSubmit means the caller should
// post the returned star count and close the modal.
func (r *ratingModal) Update(msg tea.KeyMsg) (ratingAction, int) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return ratingCancel, 0

	case "left", "h":
		if r.hover > 1 {
			r.hover--
		}
		return ratingNone, 0

	case "right", "l":
		if r.hover < maxStars {
			r.hover++
		}
		return ratingNone, 0

	case "1", "2", "3", "4", "5":
		n := int(msg.String()[0] - '0')
		r.hover = n
		r.selected = n
		r.errMsg = ""
		return ratingNone, 0

	case " ":
		r.selected = r.hover
		r.errMsg = ""
		return ratingNone, 0

	case "enter":
		if r.selected == 0 && r.hover > 0 {
			// First enter locks in the hovered star.
			r.selected = r.hover
			r.errMsg = ""
			return ratingNone, 0
		}
		if r.selected == 0 {
			r.errMsg = selectRatingError
			return ratingNone, 0
		}
		r.errMsg = ""
		return ratingSubmit, r.selected
	}

	return ratingNone, 0
}

func (r ratingModal) View(width, height int) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Rate This Book"))
	b.WriteString("\n")
	b.WriteString(StyleNormal.Render(r.item.Title))
	b.WriteString("\n\n")

	filled := r.filled()
	stars := make([]string, maxStars)
	for i := 0; i < maxStars; i++ {
		glyph := "☆"
		style := StyleHelp
		if i < filled {
			glyph = "★"
			style = lipgloss.NewStyle().Foreground(ColorYellow)
		}
		if i+1 == r.hover {
			style = style.Bold(true).Underline(true)
		}
		stars[i] = style.Render(glyph)
	}
	b.WriteString(strings.Join(stars, " "))
	b.WriteString("\n\n")

	switch {
	case r.errMsg != "":
		b.WriteString(StyleError.Render(r.errMsg))
	case r.selected == 0:
		b.WriteString(StyleHelp.Render(chooseStarPrompt))
	default:
		b.WriteString(StyleMeta.Render("Press enter to save."))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleHelp.Render("←/→ choose • enter save • esc cancel"))

	box := StyleBorder.Padding(1, 2).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
