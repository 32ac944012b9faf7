package app

import (
	"fmt"
	"os"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/cache"
	"github.com/beyond-the-bookshelf/btbctl/internal/config"
	"github.com/beyond-the-bookshelf/btbctl/internal/cover"
	"github.com/beyond-the-bookshelf/btbctl/internal/tui"
	"github.com/beyond-the-bookshelf/btbctl/internal/util"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	client   *api.Client
	cacheMgr *cache.Manager
	logger   *log.Logger

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "btbctl",
	Short: "Browse and update your Beyond the Bookshelf reading lists",
	Long: `btbctl is a terminal client for Beyond the Bookshelf.

It browses your reading and completed lists, updates reading progress,
and rates books you finish, against the same API the web site uses.

Run 'btbctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/btbctl/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}

		if flagConfig != "" {
			os.Setenv("BTBCTL_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client = api.New(cfg.API.Token, cfg.API.BaseURL, logger)
		cacheMgr = cache.New(cfg.Defaults.CacheDir)
		return nil
	}

	rootCmd.AddCommand(
		newBrowseCmd(),
		newShelvesCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newCacheCmd(),
		newVersionCmd(),
	)
}

// coverResolver builds the cover URL resolver from storage config.
func coverResolver() cover.Resolver {
	return cover.New(cfg.Storage.BaseURL, cfg.Storage.CoverPrefix, cfg.Storage.Placeholder)
}

// requireToken fails fast for commands that cannot degrade without auth.
func requireToken() error {
	if client.HasToken() {
		return nil
	}
	return fmt.Errorf("not logged in — run 'btbctl login' or set %s", cfg.API.TokenEnv)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
