// Package cmd provides Cobra CLI commands for fontkeeper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontkeeper/internal/cli"
	"github.com/bnema/fontkeeper/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	quiet     bool
	rootCmd   = &cobra.Command{
		Use:   "fontkeeper",
		Short: "Custom fonts for your notes",
		Long: `Fontkeeper - bring your own fonts to a note-taking host.

Import TrueType, OpenType and WOFF files, pick one as the interface and
code font, and shift every text size by a fixed number of pixels. The
result is written as a stylesheet snippet the host loads.

Every command re-applies the stored settings, so the stylesheet always
reflects the latest state.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			app.Notifier.SetQuiet(quiet)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// requireApp returns the initialized app or an error.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
