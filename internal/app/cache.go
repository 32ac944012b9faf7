package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local cover cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(cfg.Defaults.CacheDir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cacheMgr.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			ok("Cover cache cleared")
			return nil
		},
	})

	return cmd
}
