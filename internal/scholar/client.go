// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar queries the Semantic Scholar Graph API with a fallback
// list of alternative query phrasings and formats the winning result page.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// searchAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var searchAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// searchFields is the field set requested for every search. The client
// never varies it.
const searchFields = "paperId,title,abstract,authors,year,citationCount,publicationDate,url,venue"

// maxLimit is the server-side page size cap. Larger limits are silently
// clamped, not rejected.
const maxLimit = 100

// SortMode selects the ordering of papers within a result page.
type SortMode string

const (
	// SortRecent keeps the server's default ordering untouched.
	SortRecent SortMode = "recent"
	// SortCitations re-sorts the page by descending citation count.
	SortCitations SortMode = "citations"
)

// SearchOptions are the per-search parameters shared by every attempt in
// a fallback sequence.
type SearchOptions struct {
	Limit  int
	Offset int

	// YearFilter is a year range, e.g. "2020-" or "2015-2020".
	YearFilter string

	// DateFilter is a date range in YYYY-MM-DD form, e.g. "2024-10-01:"
	// or "2024-01-01:2024-12-31". When both filters are set the date
	// filter wins; exactly one is ever transmitted.
	DateFilter string

	Sort SortMode
}

// Client queries the Semantic Scholar paper search API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UserAgent  string
}

// NewClient builds a Client from config. The API key is passed in by
// value; the client never consults the process environment.
func NewClient(cfg types.SearchConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		APIKey:     cfg.APIKey,
		UserAgent:  cfg.UserAgent,
	}
}

// Search performs one paper search request. It returns a *TransportError
// on network failure or timeout, a *RemoteError on a non-2xx status, and
// a wrapped parse error on undecodable JSON.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*types.ResultPage, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	limit := opts.Limit
	if limit > maxLimit {
		limit = maxLimit
	}
	if limit < 1 {
		limit = 1
	}

	params := url.Values{
		"query":  {query},
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(opts.Offset)},
		"fields": {searchFields},
	}

	// Date filter is more precise and wins over the year filter.
	if opts.DateFilter != "" {
		params.Set("publicationDateOrYear", opts.DateFilter)
	} else if opts.YearFilter != "" {
		params.Set("year", opts.YearFilter)
	}

	reqURL := searchAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page types.ResultPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	// Citation sort reorders the in-memory page only; total/offset/next
	// keep the server-reported values. The sort is stable so ties retain
	// their server order.
	if opts.Sort == SortCitations {
		sort.SliceStable(page.Data, func(i, j int) bool {
			return page.Data[i].CitationCount > page.Data[j].CitationCount
		})
	}

	return &page, nil
}

var (
	yearFilterRe = regexp.MustCompile(`^(\d{4}|\d{4}-|-\d{4}|\d{4}-\d{4})$`)
	dateFilterRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{4}-\d{2}-\d{2}:|:\d{4}-\d{2}-\d{2}|\d{4}-\d{2}-\d{2}:\d{4}-\d{2}-\d{2})$`)
)

// ValidateFilters rejects malformed filter specs before any request is
// made. Filter strings themselves are transmitted verbatim.
func ValidateFilters(opts SearchOptions) error {
	if opts.YearFilter != "" && !yearFilterRe.MatchString(opts.YearFilter) {
		return fmt.Errorf("invalid year filter %q: use YYYY, YYYY-, -YYYY, or YYYY-YYYY", opts.YearFilter)
	}
	if opts.DateFilter != "" && !dateFilterRe.MatchString(opts.DateFilter) {
		return fmt.Errorf("invalid date filter %q: use YYYY-MM-DD, YYYY-MM-DD:, :YYYY-MM-DD, or YYYY-MM-DD:YYYY-MM-DD", opts.DateFilter)
	}
	return nil
}
