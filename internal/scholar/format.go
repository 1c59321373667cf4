// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// Render placeholders for missing optional fields. Substitution happens
// here at the formatting boundary, never at parse time.
const (
	placeholderTitle  = "Unknown Title"
	placeholderValue  = "N/A"
	placeholderAuthor = "Unknown"
)

const bannerWidth = 80

// FormatJSON writes the full result page, including the query_used and
// query_attempt stamps, as indented JSON.
func FormatJSON(page *types.ResultPage, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

// FormatText writes a human-readable rendering of the page: a banner with
// the winning query, its attempt index out of totalAttempts, the server
// total and the shown count, then one numbered block per paper.
func FormatText(page *types.ResultPage, totalAttempts int, w io.Writer) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Query: %q\n", page.QueryUsed)
	fmt.Fprintf(w, "Attempt: %d/%d\n", page.QueryAttempt, totalAttempts)
	fmt.Fprintf(w, "Total papers found: %d\n", page.Total)
	fmt.Fprintf(w, "Showing: %d papers\n", len(page.Data))
	fmt.Fprintf(w, "%s\n", banner)

	for i, paper := range page.Data {
		formatPaper(w, paper, i+1)
	}

	fmt.Fprintf(w, "\n%s\n", banner)
}

// formatPaper writes one numbered paper block.
func formatPaper(w io.Writer, p types.Paper, index int) {
	title := p.Title
	if title == "" {
		title = placeholderTitle
	}

	year := placeholderValue
	if p.Year != nil {
		year = fmt.Sprintf("%d", *p.Year)
	}
	venue := p.Venue
	if venue == "" {
		venue = placeholderValue
	}
	url := p.URL
	if url == "" {
		url = placeholderValue
	}

	fmt.Fprintf(w, "\n%d. %s\n", index, title)
	fmt.Fprintf(w, "   Authors: %s\n", formatAuthors(p.Authors))
	fmt.Fprintf(w, "   Year: %s | Citations: %d | Venue: %s\n", year, p.CitationCount, venue)
	fmt.Fprintf(w, "   URL: %s\n", url)

	// The abstract is rendered verbatim, untruncated.
	if p.Abstract != "" {
		fmt.Fprintf(w, "   Abstract: %s\n", p.Abstract)
	}
}

// formatAuthors joins up to the first three author names and appends a
// literal " et al." whenever more than three authors exist.
func formatAuthors(authors []types.Author) string {
	names := make([]string, 0, 3)
	for _, a := range authors {
		if len(names) == 3 {
			break
		}
		name := a.Name
		if name == "" {
			name = placeholderAuthor
		}
		names = append(names, name)
	}
	s := strings.Join(names, ", ")
	if len(authors) > 3 {
		s += " et al."
	}
	return s
}
