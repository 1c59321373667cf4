package types

import "time"

// SearchConfig holds settings for the search client and fallback loop.
type SearchConfig struct {
	// Timeout bounds each HTTP request (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholar-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// APIKey is an optional Semantic Scholar API key for higher rate
	// limits. Requests without one proceed unauthenticated.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RetryDelay is the fixed pause between unsuccessful query attempts
	// (default 1s). It is a courtesy delay, not a backoff schedule.
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// HistoryConfig holds settings for the local search history store.
type HistoryConfig struct {
	// Dir is the directory holding history.db (default ".scholar-search").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of history rows listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}
