package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli/styles"
)

var (
	historyJSON  bool
	historyMax   int
	historyPurge time.Duration
)

const defaultHistoryMax = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent previews",
	Long:  `Lists previews recorded by simulate sessions, most recent first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyMax, "max", "n", defaultHistoryMax, "maximum entries to show")
	historyCmd.Flags().DurationVar(&historyPurge, "purge-older-than", 0, "delete entries older than this age first (e.g. 720h)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	journal := app.DB.PreviewJournal()

	if historyPurge > 0 {
		n, err := journal.DeleteOlderThan(ctx, time.Now().Add(-historyPurge))
		if err != nil {
			return fmt.Errorf("purge history: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "purged %d entries\n", n)
	}

	records, err := journal.Recent(ctx, historyMax)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println(app.Theme.Subtle.Render("  No previews recorded yet."))
		return nil
	}

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, styles.HistoryRow(rec))
	}
	t := styles.NewStyledTable(app.Theme, styles.HistoryTableColumns(), rows, 100, len(rows)+1)
	fmt.Println(t.View())
	return nil
}
