// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scholar-search.
// Field names and JSON tags mirror the Semantic Scholar Graph API wire
// format so a result page can be re-serialized verbatim.
package types

// Author is one entry in a paper's author list. Name may be empty; the
// formatter substitutes a placeholder at render time, never at parse time.
type Author struct {
	AuthorID string `json:"authorId,omitempty" yaml:"author_id,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Paper is one search hit. Every field except PaperID is optional on the
// wire; missing values are carried through as zero values (or nil for
// Year, which the API reports as null) and resolved to placeholders only
// when formatted.
type Paper struct {
	PaperID         string   `json:"paperId" yaml:"paper_id"`
	Title           string   `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract        string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Authors         []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year            *int     `json:"year,omitempty" yaml:"year,omitempty"`
	CitationCount   int      `json:"citationCount,omitempty" yaml:"citation_count,omitempty"`
	PublicationDate string   `json:"publicationDate,omitempty" yaml:"publication_date,omitempty"`
	URL             string   `json:"url,omitempty" yaml:"url,omitempty"`
	Venue           string   `json:"venue,omitempty" yaml:"venue,omitempty"`
}

// ResultPage is one page of search results plus pagination metadata.
// QueryUsed and QueryAttempt are stamped by the fallback controller on the
// first page whose Data is non-empty; the client never sets them.
type ResultPage struct {
	Total  int     `json:"total" yaml:"total"`
	Offset int     `json:"offset" yaml:"offset"`
	Next   *int    `json:"next,omitempty" yaml:"next,omitempty"`
	Data   []Paper `json:"data" yaml:"data"`

	QueryUsed    string `json:"query_used,omitempty" yaml:"query_used,omitempty"`
	QueryAttempt int    `json:"query_attempt,omitempty" yaml:"query_attempt,omitempty"`
}
