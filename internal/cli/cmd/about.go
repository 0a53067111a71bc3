package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version, build and runtime information",
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	details := styles.AboutDetails{
		Engine:       app.Config.Simulation.Engine,
		DatabasePath: app.DB.Path(),
	}
	if app.Manager != nil {
		details.ConfigPath = app.Manager.ConfigPath()
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, details))
	return nil
}
