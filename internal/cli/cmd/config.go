package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli/styles"
	"github.com/bnema/linkpeek/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create the default config file or show where it lives.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Writes the default configuration to the XDG config directory.

An existing file is never overwritten.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if app.Manager == nil {
		return fmt.Errorf("config directory unavailable")
	}
	path, created, err := app.Manager.InitFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	if created {
		fmt.Println(renderer.RenderCreated(path))
	} else {
		fmt.Println(renderer.RenderExists(path))
	}
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	_, statErr := os.Stat(path)
	fmt.Println(renderer.RenderPath(path, statErr == nil))
	return nil
}
