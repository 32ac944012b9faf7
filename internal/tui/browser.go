package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/cache"
	"github.com/beyond-the-bookshelf/btbctl/internal/cover"
	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/beyond-the-bookshelf/btbctl/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const loadTimeout = 30 * time.Second

// modalKind names which overlay, if any, owns the keyboard.
type modalKind int

const (
	modalNone modalKind = iota
	modalProgress
	modalRating
)

// BrowserDeps wires the shelf browser to the rest of the program.
type BrowserDeps struct {
	API        *api.Client
	Covers     cover.Resolver
	Cache      *cache.Manager // nil disables cover caching
	DetailBase string         // base URL for book detail pages; empty disables open
	InputMode  progress.Mode
	Lists      []ListOption // cycle order for tab; may be empty
	Logger     *log.Logger
}

// BrowserModel is the interactive shelf browser. It owns the book list,
// the details pane, and the progress and rating overlays.
type BrowserModel struct {
	deps BrowserDeps
	keys browserKeys

	sel     shelf.Selector
	seq     int // current load generation
	loading bool
	loadErr string
	shelf   *shelf.Shelf

	list     list.Model
	modal    modalKind
	progress progressModal
	rating   ratingModal

	coverPaths map[string]string // item key -> cached image path
	imgProto   TerminalImageProtocol

	width, height int
	activeCmd     string
	quitting      bool
}

// NewBrowser builds a browser focused on sel. Call Init to start the
// first load.
func NewBrowser(deps BrowserDeps, sel shelf.Selector) BrowserModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	d := newBookDelegate()
	l := list.New(nil, d, 0, 0)
	l.Title = sel.Title()
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Filter = SubstringFilter
	l.Styles.Title = StyleHeader
	l.Styles.HelpStyle = StyleHelp

	return BrowserModel{
		deps:       deps,
		keys:       newBrowserKeys(),
		sel:        sel,
		loading:    true,
		list:       l,
		coverPaths: make(map[string]string),
		imgProto:   DetectImageProtocol(),
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return m.loadCmd(m.seq, m.sel)
}

// loadCmd fetches the selected shelf. The seq is baked into the result
// so stale responses can be recognized and dropped.
func (m BrowserModel) loadCmd(seq int, sel shelf.Selector) tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		sh, err := client.LoadShelf(ctx, sel)
		return shelfLoadedMsg{seq: seq, shelf: sh, err: err}
	}
}

func (m BrowserModel) fetchCoverCmd(item shelf.Item) tea.Cmd {
	if m.deps.Cache == nil || !item.Navigable() {
		return nil
	}
	key := item.Key()
	if _, ok := m.coverPaths[key]; ok {
		return nil
	}
	url := m.deps.Covers.Resolve(item.CoverURL)
	fallback := m.deps.Covers.PlaceholderURL()
	mgr := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		path, err := mgr.FetchCover(ctx, key, url, fallback)
		return coverFetchedMsg{key: key, path: path, err: err}
	}
}

func (m BrowserModel) submitProgressCmd(item shelf.Item, percent float64) tea.Cmd {
	client := m.deps.API
	key := item.Key()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		err := client.SubmitProgress(ctx, key, percent)
		return progressSavedMsg{key: key, percent: percent, err: err}
	}
}

func (m BrowserModel) submitRatingCmd(item shelf.Item, stars int) tea.Cmd {
	client := m.deps.API
	key := item.Key()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		err := client.SubmitRating(ctx, key, stars)
		return ratingSavedMsg{key: key, stars: stars, err: err}
	}
}

// selectedItem returns the book under the cursor, if any.
func (m BrowserModel) selectedItem() (shelf.Item, bool) {
	entry, ok := m.list.SelectedItem().(bookEntry)
	if !ok {
		return shelf.Item{}, false
	}
	return entry.item, true
}

// switchList advances to the next configured list and starts a fresh
// load. Any in-flight load for the previous list becomes stale.
func (m BrowserModel) switchList() (BrowserModel, tea.Cmd) {
	if len(m.deps.Lists) < 2 {
		return m, nil
	}
	cur := 0
	for i, o := range m.deps.Lists {
		if o.Selector == m.sel {
			cur = i
			break
		}
	}
	next := m.deps.Lists[(cur+1)%len(m.deps.Lists)]
	return m.reload(next.Selector)
}

// reload begins loading sel, resetting list contents and any filter.
func (m BrowserModel) reload(sel shelf.Selector) (BrowserModel, tea.Cmd) {
	m.sel = sel
	m.seq++
	m.loading = true
	m.loadErr = ""
	m.shelf = nil
	m.list.ResetFilter()
	m.list.Title = sel.Title()
	cmd := m.list.SetItems(nil)
	return m, tea.Batch(cmd, m.loadCmd(m.seq, sel))
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case shelfLoadedMsg:
		if msg.seq != m.seq {
			// A newer load superseded this one.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.deps.Logger.Warn("shelf load failed", "err", msg.err)
			m.loadErr = api.Message(msg.err)
			return m, nil
		}
		m.shelf = msg.shelf
		m.list.Title = msg.shelf.Name
		items := make([]list.Item, len(msg.shelf.Items))
		cmds := make([]tea.Cmd, 0, len(msg.shelf.Items)+1)
		for i, it := range msg.shelf.Items {
			items[i] = bookEntry{item: it}
			if c := m.fetchCoverCmd(it); c != nil {
				cmds = append(cmds, c)
			}
		}
		cmds = append(cmds, m.list.SetItems(items))
		return m, tea.Batch(cmds...)

	case coverFetchedMsg:
		if msg.err != nil {
			m.deps.Logger.Debug("cover fetch failed", "key", msg.key, "err", msg.err)
			return m, nil
		}
		m.coverPaths[msg.key] = msg.path
		return m, nil

	case progressSavedMsg:
		// The indicator already reflects the commit; persistence is
		// best-effort.
		if msg.err != nil {
			m.deps.Logger.Warn("progress save failed", "key", msg.key, "err", msg.err)
		}
		return m, nil

	case ratingSavedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("rating save failed", "key", msg.key, "err", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *BrowserModel) resizeList() {
	listWidth := m.width
	if m.width > detailsPaneMin {
		listWidth = m.width - detailsPaneWidth
	}
	// One line each for the header rule and the footer.
	m.list.SetSize(listWidth, m.height-2)
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalProgress:
		return m.handleProgressKey(msg)
	case modalRating:
		return m.handleRatingKey(msg)
	}

	// While the filter prompt is active the list owns every key.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.reload):
		return m.reload(m.sel)

	case key.Matches(msg, m.keys.switchTo):
		return m.switchList()

	case key.Matches(msg, m.keys.open):
		item, ok := m.selectedItem()
		if !ok || !item.Navigable() || m.deps.DetailBase == "" {
			return m, nil
		}
		if err := util.OpenBrowser(item.DetailURL(m.deps.DetailBase)); err != nil {
			m.deps.Logger.Warn("open browser failed", "err", err)
		}
		m.activeCmd = "o"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.progress):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.modal = modalProgress
		m.progress = newProgressModal(item, m.deps.InputMode)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, percent, cmd := m.progress.Update(msg)
	switch action {
	case progressCancel:
		m.modal = modalNone
		return m, nil
	case progressSubmit:
		// The commit lands in the UI immediately; the POST is
		// fire-and-forget. The rating handoff keys off the percent the
		// modal was opened with, so re-saving 100 never re-prompts.
		item := m.progress.item
		m.applyPercent(item.Key(), percent)
		save := m.submitProgressCmd(item, percent)
		if progress.Crossed(item.Percent, percent) {
			m.modal = modalRating
			m.rating = newRatingModal(item)
		} else {
			m.modal = modalNone
		}
		return m, save
	}
	return m, cmd
}

func (m BrowserModel) handleRatingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, stars := m.rating.Update(msg)
	switch action {
	case ratingCancel:
		m.modal = modalNone
		return m, nil
	case ratingSubmit:
		// Closes right away; the POST outcome is only logged.
		item := m.rating.item
		m.modal = modalNone
		return m, m.submitRatingCmd(item, stars)
	}
	return m, nil
}

// applyPercent records a saved progress value on the in-memory shelf
// and refreshes the corresponding list row.
func (m *BrowserModel) applyPercent(key string, percent float64) {
	if m.shelf == nil {
		return
	}
	for i := range m.shelf.Items {
		if m.shelf.Items[i].Key() == key {
			m.shelf.Items[i].Percent = percent
		}
	}
	for i, li := range m.list.Items() {
		if entry, ok := li.(bookEntry); ok && entry.item.Key() == key {
			entry.item.Percent = percent
			m.list.SetItem(i, entry)
		}
	}
}

// RunBrowser launches the interactive shelf browser.
func RunBrowser(deps BrowserDeps, sel shelf.Selector) error {
	m := NewBrowser(deps, sel)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shelf browser: %w", err)
	}
	return nil
}
