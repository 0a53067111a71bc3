package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/bootstrap"
	"github.com/bnema/linkpeek/internal/cli/model"
	"github.com/bnema/linkpeek/internal/cli/styles"
)

var (
	simulateScript    string
	simulateMode      string
	simulateRealtime  bool
	simulateTUI       bool
	simulateWatch     bool
	simulateNoJournal bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <note.md>",
	Short: "Replay a hover script against a note",
	Long: `Renders a markdown note into a simulated editor window, loads the preview
extension with the stored settings and replays a TOML script of pointer and
keyboard input. The resulting preview events are printed as a timeline.

Script steps ([[step]] tables):
  move         move the pointer to a selector or x/y
  over         hover a selector or x/y without moving through the layout
  key_down     press a key (modifier names like "alt" are accepted)
  key_up       release a key
  wait         let a duration pass ("600ms")
  open_window  open another window showing markdown text
  edit         replace the note text

By default time is virtual: waits complete instantly and the timeline is
exact. Use --realtime to run on the wall clock.

Examples:
  linkpeek simulate notes.md --script hover.toml
  linkpeek simulate notes.md --script hover.toml --mode live --tui
  linkpeek simulate notes.md --script hover.toml --realtime --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVarP(&simulateScript, "script", "s", "", "TOML script of input steps")
	simulateCmd.Flags().StringVarP(&simulateMode, "mode", "m", string(bootstrap.ModeReading), "view to render: reading or live")
	simulateCmd.Flags().BoolVar(&simulateRealtime, "realtime", false, "run on the wall clock")
	simulateCmd.Flags().BoolVar(&simulateTUI, "tui", false, "open the trace in an interactive viewer")
	simulateCmd.Flags().BoolVar(&simulateWatch, "watch", false, "reload the note and config when they change (realtime only)")
	simulateCmd.Flags().BoolVar(&simulateNoJournal, "no-journal", false, "do not record previews in the history")
	_ = simulateCmd.MarkFlagRequired("script")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	mode, err := bootstrap.ParseDocumentMode(simulateMode)
	if err != nil {
		return err
	}
	if simulateWatch && !simulateRealtime {
		return fmt.Errorf("--watch needs --realtime")
	}
	script, err := bootstrap.LoadScript(simulateScript)
	if err != nil {
		return err
	}
	source, err := bootstrap.ReadSource(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := bootstrap.SessionOptions{
		Config:       app.Config,
		Source:       source,
		DocumentPath: args[0],
		Watch:        simulateWatch,
		Mode:         mode,
		Script:       script,
		Realtime:     simulateRealtime,
		Data:         app.SettingsData(),
	}
	if !simulateNoJournal {
		opts.Journal = app.DB.PreviewJournal()
	}
	if simulateWatch {
		if err := app.WatchConfig(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	session, err := bootstrap.NewSession(ctx, opts)
	if err != nil {
		return err
	}
	runErr := session.Run(ctx)
	entries := session.Trace().Entries()

	if simulateTUI && runErr == nil {
		return showTrace(ctx, app.Theme, filepath.Base(args[0]), entries)
	}

	renderer := styles.NewTraceRenderer(app.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.Render(entries))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderer.RenderSummary(entries))
	return runErr
}

func showTrace(ctx context.Context, theme *styles.Theme, title string, entries []bootstrap.TraceEntry) error {
	m := model.NewTraceModel(theme, title, entries)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
