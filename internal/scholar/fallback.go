// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// InterAttemptDelay is the fixed pause between unsuccessful query
// attempts. It is a courtesy delay against upstream rate limits, not a
// backoff schedule: it never grows with the attempt count. Tests override
// it to avoid real sleeps.
var InterAttemptDelay = 1 * time.Second

// Searcher performs one search attempt. *Client implements it; tests use
// fakes to observe call order.
type Searcher interface {
	Search(ctx context.Context, query string, opts SearchOptions) (*types.ResultPage, error)
}

// QueryWithFallback tries each query in order until one returns a page
// with at least one paper, stamps the winning page with the query and its
// 1-based attempt index, and returns it. Attempt errors are written to w
// and swallowed; they never abort the sequence. When every attempt fails
// or comes back empty it returns ErrNoResults — partial results from
// failed attempts are discarded, never merged.
func QueryWithFallback(ctx context.Context, s Searcher, queries []string, opts SearchOptions, w io.Writer) (*types.ResultPage, error) {
	for i, query := range queries {
		attempt := i + 1
		fmt.Fprintf(w, "Attempting query %d/%d: %q\n", attempt, len(queries), query)

		page, err := s.Search(ctx, query, opts)
		switch {
		case err != nil:
			fmt.Fprintf(w, "✗ Query failed: %v\n", err)
		case len(page.Data) > 0:
			fmt.Fprintf(w, "✓ Query succeeded with %d results\n", len(page.Data))
			page.QueryUsed = query
			page.QueryAttempt = attempt
			return page, nil
		default:
			fmt.Fprintln(w, "✗ Query returned no results")
		}

		if attempt < len(queries) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(InterAttemptDelay):
			}
		}
	}
	return nil, ErrNoResults
}
