// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// QueryFile is the on-disk representation of a fallback query list and,
// after a successful run, its winning result page. The researcher can keep
// a set of query phrasings in a file and rerun them without retyping, or
// save a search for later reference.
type QueryFile struct {
	Queries []string          `yaml:"queries"`
	Params  QueryFileParams   `yaml:"params,omitempty"`
	Result  *types.ResultPage `yaml:"result,omitempty"`
	Summary *QuerySummary     `yaml:"summary,omitempty"`
}

// QueryFileParams stores optional search parameter defaults. Flags set
// explicitly on the command line override these.
type QueryFileParams struct {
	Limit      int    `yaml:"limit,omitempty"`
	Offset     int    `yaml:"offset,omitempty"`
	YearFilter string `yaml:"year_filter,omitempty"`
	DateFilter string `yaml:"date_filter,omitempty"`
	Sort       string `yaml:"sort,omitempty"`
}

// QuerySummary stores run statistics and a timestamp.
type QuerySummary struct {
	QueryUsed     string    `yaml:"query_used"`
	QueryAttempt  int       `yaml:"query_attempt"`
	TotalAttempts int       `yaml:"total_attempts"`
	Total         int       `yaml:"total"`
	Shown         int       `yaml:"shown"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// ReadQueryFile loads a query file from disk. The queries list must be
// non-empty.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	if len(qf.Queries) == 0 {
		return nil, fmt.Errorf("query file %s contains no queries", path)
	}
	return &qf, nil
}

// WriteQueryFile saves the query list, parameters, winning page, and a
// run summary to a YAML file.
func WriteQueryFile(path string, queries []string, opts SearchOptions, page *types.ResultPage) error {
	qf := QueryFile{
		Queries: queries,
		Params: QueryFileParams{
			Limit:      opts.Limit,
			Offset:     opts.Offset,
			YearFilter: opts.YearFilter,
			DateFilter: opts.DateFilter,
			Sort:       string(opts.Sort),
		},
		Result: page,
		Summary: &QuerySummary{
			QueryUsed:     page.QueryUsed,
			QueryAttempt:  page.QueryAttempt,
			TotalAttempts: len(queries),
			Total:         page.Total,
			Shown:         len(page.Data),
			Timestamp:     time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ToOptions converts stored parameters into SearchOptions.
func (p QueryFileParams) ToOptions() SearchOptions {
	opts := SearchOptions{
		Limit:      p.Limit,
		Offset:     p.Offset,
		YearFilter: p.YearFilter,
		DateFilter: p.DateFilter,
		Sort:       SortRecent,
	}
	if p.Sort != "" {
		opts.Sort = SortMode(p.Sort)
	}
	return opts
}
