// Package cmd provides Cobra CLI commands for linkpeek.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli"
	"github.com/bnema/linkpeek/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "linkpeek",
		Short: "Hover previews for external links in markdown notes",
		Long: `linkpeek - hover previews for external links.

Rest the pointer on an external link in a rendered note and a floating
preview of the target opens next to it. linkpeek runs the preview extension
inside a simulated editor host so that hover sessions can be replayed,
inspected and tuned from the terminal.

Use 'linkpeek simulate' to replay a recorded hover script against a note,
or explore the subcommands for settings, placement and preview history.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "bounds":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command for the binary described by info.
func Execute(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
