package commands

import (
	"fmt"

	"golfr-rankings/internal/rankings"
	"golfr-rankings/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showFile *string

func init() {
	showFile = showCmd.Flags().String("file", "", "The rankings file to show, defaults to the configured output.")
	rootCmd.AddCommand(showCmd)
}

// rankingsFile returns `flag` or the configured output path if it is empty.
func rankingsFile(flag string) string {
	if flag != "" {
		return flag
	}
	return loadConfig().Output
}

var showCmd = &cobra.Command{
	Use:   "show [--file <path/to/rankings.json>]",
	Short: "Prints a rankings file as a table.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := rankingsFile(*showFile)
		record, err := rankings.ReadFile(path)
		if err != nil {
			serviceutil.Fatal("failed to read rankings", err)
		}

		t := newTable()
		t.SetTitle(fmt.Sprintf("Updated %s", record.Updated))
		t.AppendHeader(table.Row{"Rank", "Player"})
		for i, name := range record.Rankings {
			t.AppendRow(table.Row{i + 1, name})
		}
		t.Render()
	},
}
