package commands

import (
	"fmt"
	"os"
	"strings"

	"golfr-rankings/internal/rankings"
	"golfr-rankings/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var lookupFile *string
var lookupLimit *int

func init() {
	lookupFile = lookupCmd.Flags().String("file", "", "The rankings file to search, defaults to the configured output.")
	lookupLimit = lookupCmd.Flags().Int("limit", 5, "The maximum amount of matches to print.")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name> [--file <path/to/rankings.json>] [--limit <n>]",
	Short: "Finds the rank of a player by approximate name.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := rankingsFile(*lookupFile)
		record, err := rankings.ReadFile(path)
		if err != nil {
			serviceutil.Fatal("failed to read rankings", err)
		}

		query := strings.Join(args, " ")
		matches := rankings.Lookup(record.Rankings, query, *lookupLimit)
		if len(matches) == 0 {
			fmt.Fprintf(os.Stderr, "no ranked player looks like %q\n", query)
			os.Exit(1)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Rank", "Player", "Similarity"})
		for _, match := range matches {
			t.AppendRow(table.Row{match.Rank, match.Name, fmt.Sprintf("%.3f", match.Similarity)})
		}
		t.Render()
	},
}
