package commands

import (
	"errors"
	"time"

	"golfr-rankings/internal/archive"
	"golfr-rankings/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit *int
var historyRun *string

func init() {
	historyLimit = historyCmd.Flags().Int("limit", 20, "The amount of recent runs to list.")
	historyRun = historyCmd.Flags().String("run", "", "Print the rankings stored by a single run instead.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>] [--run <id>]",
	Short: "Lists refresh runs recorded in the archive.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if !cfg.Archive.Enabled() {
			serviceutil.Fatal("cannot show history", errors.New("archive is not configured"))
		}

		store, err := archive.Open(cmd.Context(), cfg.Archive)
		if err != nil {
			serviceutil.Fatal("failed to open archive", err)
		}
		defer store.Close()

		if *historyRun != "" {
			names, err := store.Rankings(cmd.Context(), *historyRun)
			if err != nil {
				serviceutil.Fatal("failed to read run rankings", err)
			}
			t := newTable()
			t.SetTitle(*historyRun)
			t.AppendHeader(table.Row{"Rank", "Player"})
			for i, name := range names {
				t.AppendRow(table.Row{i + 1, name})
			}
			t.Render()
			return
		}

		runs, err := store.Recent(cmd.Context(), *historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to list runs", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Run", "Updated", "Source", "Reason", "Players", "Archived"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.Id,
				run.Updated,
				run.Source,
				run.Reason,
				run.Count,
				run.CreatedAt.Local().Format(time.DateTime),
			})
		}
		t.Render()
	},
}
