package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/config"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var tokenFlag string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token for future sessions",
		Long: `login saves an API token to ~/.config/btbctl/token.

Get a token from your account page on the web site. The token can also
be supplied per-session via the environment instead (see api.token_env
in the config file).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(tokenFlag)
			if token == "" {
				fmt.Print("Paste your API token: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return fmt.Errorf("no token provided")
			}

			// Verify before saving so a typo fails loudly here, not on
			// the next browse.
			probe := api.New(token, cfg.API.BaseURL, logger)
			user, err := probe.Me(context.Background())
			if err != nil {
				return fmt.Errorf("token check failed: %s", api.Message(err))
			}

			if err := config.SaveToken(token); err != nil {
				return fmt.Errorf("saving token: %w", err)
			}

			ok("Logged in as %s", user)
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "API token (prompts if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveToken(""); err != nil {
				return fmt.Errorf("removing token: %w", err)
			}
			ok("Logged out")
			return nil
		},
	}
}
