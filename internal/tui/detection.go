package tui

import (
	"github.com/beyond-the-bookshelf/btbctl/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI reports whether a command should present its interactive
// view. Piped output, --no-interactive, or an explicit --format all
// select the plain text path instead.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return false
	}
	return true
}
