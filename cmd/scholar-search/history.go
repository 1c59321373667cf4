// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the local search history",
	Long: `History manages the local SQLite database of past successful searches.
Each entry records which query phrasing won, its attempt index, the full
fallback list, and result counts.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded searches, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if flagBool(cmd, "json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recorded searches.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-40s  %-7s  %-6s  %s\n",
		"When", "Winning query", "Attempt", "Total", "Shown")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, e := range entries {
		query := e.QueryUsed
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Fprintf(w, "%-20s  %-40s  %-7s  %-6d  %d\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			query,
			fmt.Sprintf("%d/%d", e.QueryAttempt, len(e.Queries)),
			e.Total, e.Shown)
	}

	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries.\n", n)
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum entries to list (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
