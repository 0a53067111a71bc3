package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli/styles"
	"github.com/bnema/linkpeek/internal/infrastructure/host"
	"github.com/bnema/linkpeek/internal/plugin"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the preview settings",
	Long: `Reads and writes the settings the preview extension stores in the host.

Changes go through the same settings tab the host shows, so they are
validated exactly as in the editor.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Changes one setting. The key is either the stored name (hoverDelay,
maxPreviewWidth, maxPreviewHeight, requireModifier, modifierKey,
closeOnRelease) or the label shown on the settings tab.

Examples:
  linkpeek settings set hoverDelay 300
  linkpeek settings set requireModifier true
  linkpeek settings set "Modifier key" alt`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the stored settings",
	RunE:  runSettingsSchema,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSchemaCmd)
}

// openSettingsTab loads the stored settings and renders the tab into a
// recorder.
func openSettingsTab() (*host.SettingsRecorder, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	store := plugin.NewSettingsStore(app.SettingsData(), app.Config.Simulation.ResolvePlatform())
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	rec := host.NewSettingsRecorder()
	rec.Render(plugin.NewSettingsTab(ctx, store))
	return rec, nil
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	rec, err := openSettingsTab()
	if err != nil {
		return err
	}
	fmt.Print(styles.NewSettingsRenderer(GetApp().Theme).Render(rec.Widgets()))
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	name, ok := plugin.SettingName(args[0])
	if !ok {
		return fmt.Errorf("unknown setting %q", args[0])
	}
	rec, err := openSettingsTab()
	if err != nil {
		return err
	}
	if err := rec.Set(name, args[1]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	w, _ := rec.Widget(name)
	fmt.Print(styles.NewSettingsRenderer(GetApp().Theme).RenderUpdated(name, w.Value))
	return nil
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	schema, err := plugin.SettingsSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
