// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/history"
	"github.com/pdiddy/scholar-search/internal/scholar"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for papers, trying fallback queries in order",
	Long: `Search tries each query phrasing in order until one returns at least one
paper, pausing briefly between unsuccessful attempts. The winning page is
printed to stdout; when every attempt fails or comes back empty the command
exits 1 with nothing on stdout.

Queries come from repeated --queries values or from a YAML query file.
Flags set on the command line override query-file parameter defaults.`,
	Example: `  # Three alternative phrasings, first productive one wins
  scholar-search search --queries "longevity mice experiments" \
      --queries "aging mouse model" --queries "lifespan extension mice"

  # Most cited papers from 2020 onwards
  scholar-search search --queries "rapamycin longevity" \
      --year-filter "2020-" --sort citations --limit 20

  # Papers from a specific date range, JSON output
  scholar-search search --queries "senolytics aging" \
      --date-filter "2025-01-01:2025-12-31" --json`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	queries, _ := cmd.Flags().GetStringArray("queries")
	queryFile, _ := cmd.Flags().GetString("query-file")

	opts := scholar.SearchOptions{Sort: scholar.SortRecent}

	if queryFile != "" {
		qf, err := scholar.ReadQueryFile(queryFile)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			queries = qf.Queries
		}
		opts = qf.Params.ToOptions()
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries: provide --queries or --query-file")
	}

	// Command-line flags override query-file defaults only when set.
	if cmd.Flags().Changed("limit") || opts.Limit == 0 {
		opts.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("offset") {
		opts.Offset, _ = cmd.Flags().GetInt("offset")
	}
	if cmd.Flags().Changed("year-filter") {
		opts.YearFilter, _ = cmd.Flags().GetString("year-filter")
	}
	if cmd.Flags().Changed("date-filter") {
		opts.DateFilter, _ = cmd.Flags().GetString("date-filter")
	}
	if cmd.Flags().Changed("sort") {
		sortMode, _ := cmd.Flags().GetString("sort")
		if sortMode != string(scholar.SortRecent) && sortMode != string(scholar.SortCitations) {
			return fmt.Errorf("invalid sort %q: use recent or citations", sortMode)
		}
		opts.Sort = scholar.SortMode(sortMode)
	}

	if err := scholar.ValidateFilters(opts); err != nil {
		return err
	}

	cfg := searchConfig()
	if cfg.RetryDelay > 0 {
		scholar.InterAttemptDelay = cfg.RetryDelay
	}

	var trace io.Writer = io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		trace = cmd.ErrOrStderr()
	}

	client := scholar.NewClient(cfg)
	page, err := scholar.QueryWithFallback(context.Background(), client, queries, opts, trace)
	if err != nil {
		return err
	}

	recordHistory(cmd, queries, page)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := scholar.WriteQueryFile(savePath, queries, opts, page); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved query file to %s\n", savePath)
	}

	out := cmd.OutOrStdout()
	switch {
	case flagBool(cmd, "json"):
		return scholar.FormatJSON(page, out)
	case flagBool(cmd, "csl"):
		return scholar.FormatCSL(page, out)
	default:
		scholar.FormatText(page, len(queries), out)
		return nil
	}
}

// recordHistory appends the successful search to the local history store.
// Failures are warnings only; they never change the search exit code.
func recordHistory(cmd *cobra.Command, queries []string, page *types.ResultPage) {
	if flagBool(cmd, "no-history") {
		return
	}
	cfg := historyConfig()
	if cfg.Disabled {
		return
	}

	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), queries, page); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not record history: %v\n", err)
	}
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	searchCmd.Flags().StringArray("queries", nil, "query strings to try in sequence (repeatable)")
	searchCmd.Flags().String("query-file", "", "YAML file holding the query list and parameter defaults")
	searchCmd.Flags().Int("limit", 10, "number of papers to return (max 100)")
	searchCmd.Flags().Int("offset", 0, "pagination offset")
	searchCmd.Flags().String("year-filter", "", "year range filter (e.g. '2020-' or '2015-2020')")
	searchCmd.Flags().String("date-filter", "", "date range filter (e.g. '2024-10-01:' or '2024-01-01:2024-12-31')")
	searchCmd.Flags().String("sort", "recent", "sort order: recent (server default) or citations")
	searchCmd.Flags().Bool("json", false, "output the raw result page as JSON")
	searchCmd.Flags().Bool("csl", false, "output papers as CSL-YAML for Pandoc")
	searchCmd.Flags().Bool("verbose", false, "print per-attempt status to stderr")
	searchCmd.Flags().String("save", "", "write the query list and results to a YAML file")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the history database")

	searchCmd.MarkFlagsMutuallyExclusive("json", "csl")

	rootCmd.AddCommand(searchCmd)
}
