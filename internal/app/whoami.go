package app

import (
	"fmt"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			user, err := client.Me(cmd.Context())
			if err != nil {
				// The session may still work for reads; report and degrade.
				warn("Could not confirm identity: %s", api.Message(err))
				fmt.Println("unknown user")
				return nil
			}
			fmt.Println(user)
			return nil
		},
	}
}
