package app

import (
	"fmt"

	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui"
	"github.com/fatih/color"
)

// runHub shows the main menu in a loop until the user quits. Browse
// actions hand the terminal to the shelf browser and return here when
// it exits.
func runHub() error {
	if !client.HasToken() {
		fmt.Println(color.YellowString("⚠ Welcome to btbctl!"))
		fmt.Println()
		fmt.Println("No API token found. Lists need a signed-in session.")
		fmt.Println()
		fmt.Println("Log in with:")
		fmt.Printf("  %s\n\n", color.CyanString("btbctl login"))
		fmt.Printf("Or set %s for this session only.\n", color.CyanString(cfg.API.TokenEnv))
		return nil
	}

	for {
		action, err := tui.RunHub(len(cfg.Shelves) > 0)
		if err != nil {
			return err
		}

		switch action {
		case tui.HubBrowseReading:
			err = tui.RunBrowser(browserDeps(), shelf.Selector{Kind: shelf.ListReading})

		case tui.HubBrowseCompleted:
			err = tui.RunBrowser(browserDeps(), shelf.Selector{Kind: shelf.ListCompleted})

		case tui.HubPickShelf:
			var sel shelf.Selector
			sel, err = pickPinnedShelf()
			if err == nil && !sel.IsZero() {
				err = tui.RunBrowser(browserDeps(), sel)
			}

		case tui.HubWhoAmI:
			err = newWhoamiCmd().Execute()
			if err == nil {
				fmt.Println()
				fmt.Println(color.CyanString("Press Enter to return to menu..."))
				var dummy string
				_, _ = fmt.Scanln(&dummy)
			}

		case tui.HubQuit:
			return nil

		default:
			return fmt.Errorf("unknown action: %s", action)
		}

		if err != nil {
			if err.Error() == "canceled by user" {
				err = nil
			} else {
				warn("%v", err)
			}
		}

		// Clear screen to reduce flicker between TUI transitions.
		fmt.Print("\033[2J\033[H")
	}
}

// pickPinnedShelf runs the shelf picker over the pinned shelves from
// config. A zero selector means the user canceled.
func pickPinnedShelf() (shelf.Selector, error) {
	opts := make([]tui.ListOption, 0, len(cfg.Shelves))
	for _, s := range cfg.Shelves {
		label := s.Name
		if label == "" {
			label = "Shelf " + s.ID
		}
		opts = append(opts, tui.ListOption{Label: label, Selector: shelf.Selector{ShelfID: s.ID}})
	}

	sel, err := tui.RunListPicker(opts)
	if err != nil {
		if err.Error() == "canceled by user" {
			return shelf.Selector{}, nil
		}
		return shelf.Selector{}, err
	}
	return sel, nil
}
