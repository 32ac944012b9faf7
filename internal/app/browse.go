package app

import (
	"context"
	"fmt"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/progress"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var (
		listName  string
		shelfName string
		search    string
		format    string
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse a reading list (interactive TUI or text output)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := resolveSelector(listName, shelfName)
			if err != nil {
				return err
			}

			if tui.ShouldUseTUI(cmd) {
				return tui.RunBrowser(browserDeps(), sel)
			}

			return printShelf(cmd.Context(), sel, search, format)
		},
	}

	cmd.Flags().StringVar(&listName, "list", "reading", "Well-known list: reading or completed")
	cmd.Flags().StringVar(&shelfName, "shelf", "", "Pinned shelf name or numeric shelf id")
	cmd.Flags().StringVar(&search, "search", "", "Only show titles containing this text")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text (disables TUI)")
	return cmd
}

// resolveSelector maps the browse flags to a list selector. --shelf wins
// over --list; a shelf name is looked up in config, anything else is
// treated as a raw shelf id.
func resolveSelector(listName, shelfName string) (shelf.Selector, error) {
	if shelfName != "" {
		if pinned := cfg.ShelfByName(shelfName); pinned != nil {
			return shelf.Selector{ShelfID: pinned.ID}, nil
		}
		return shelf.Selector{ShelfID: shelfName}, nil
	}

	switch listName {
	case "reading":
		return shelf.Selector{Kind: shelf.ListReading}, nil
	case "completed":
		return shelf.Selector{Kind: shelf.ListCompleted}, nil
	default:
		return shelf.Selector{}, fmt.Errorf("unknown list %q (want reading or completed)", listName)
	}
}

// browserDeps assembles the TUI browser's wiring from global state.
func browserDeps() tui.BrowserDeps {
	return tui.BrowserDeps{
		API:        client,
		Covers:     coverResolver(),
		Cache:      cacheMgr,
		DetailBase: cfg.DetailURLBase(),
		InputMode:  progress.Mode(cfg.Progress.InputMode),
		Lists:      listOptions(),
		Logger:     logger,
	}
}

// listOptions is the tab cycle order: the two well-known lists first,
// then any pinned shelves from config.
func listOptions() []tui.ListOption {
	opts := []tui.ListOption{
		{Label: "Currently Reading", Selector: shelf.Selector{Kind: shelf.ListReading}},
		{Label: "Completed", Selector: shelf.Selector{Kind: shelf.ListCompleted}},
	}
	for _, s := range cfg.Shelves {
		label := s.Name
		if label == "" {
			label = "Shelf " + s.ID
		}
		opts = append(opts, tui.ListOption{Label: label, Selector: shelf.Selector{ShelfID: s.ID}})
	}
	return opts
}

// printShelf is the non-interactive rendering used when stdout is piped
// or --format is given.
func printShelf(ctx context.Context, sel shelf.Selector, search, format string) error {
	if format != "" && format != "text" {
		return fmt.Errorf("unknown format %q", format)
	}

	sh, err := client.LoadShelf(ctx, sel)
	if err != nil {
		return fmt.Errorf("%s", api.Message(err))
	}

	header("%s", sh.Name)

	shown := 0
	for _, it := range sh.Items {
		if search != "" && !shelf.MatchesQuery(it.FilterKey(), search) {
			continue
		}
		shown++
		line := fmt.Sprintf("  %-50s %8s", it.Title, progress.Format(it.Percent))
		if it.PageCount > 0 {
			line += color.CyanString("  %d pages", it.PageCount)
		}
		fmt.Println(line)
	}

	if shown == 0 {
		if search != "" {
			fmt.Println("  " + color.YellowString("No titles match %q.", search))
		} else {
			fmt.Println("  " + api.EmptyShelfMessage)
		}
	}
	return nil
}
