package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newShelvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shelves",
		Short: "List the well-known lists and pinned shelves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header("Lists")
			fmt.Printf("  %-24s %s\n", "Currently Reading", color.CyanString("--list reading"))
			fmt.Printf("  %-24s %s\n", "Completed", color.CyanString("--list completed"))

			if len(cfg.Shelves) == 0 {
				fmt.Println()
				fmt.Println("No pinned shelves. Add them under 'shelves:' in " +
					color.CyanString("~/.config/btbctl/config.yml"))
				return nil
			}

			fmt.Println()
			header("Pinned Shelves")
			for _, s := range cfg.Shelves {
				name := s.Name
				if name == "" {
					name = "Shelf " + s.ID
				}
				fmt.Printf("  %-24s %s\n", name, color.CyanString("--shelf %s", s.ID))
			}
			return nil
		},
	}
}
