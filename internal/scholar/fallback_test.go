// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-search/pkg/types"
)

func init() {
	// Use a tiny inter-attempt delay so tests finish quickly.
	InterAttemptDelay = 1 * time.Millisecond
}

// fakeSearcher returns canned pages or errors per query, recording the
// order of queries it was invoked with.
type fakeSearcher struct {
	pages map[string]*types.ResultPage
	errs  map[string]error
	calls []string
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ SearchOptions) (*types.ResultPage, error) {
	f.calls = append(f.calls, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if page, ok := f.pages[query]; ok {
		return page, nil
	}
	return &types.ResultPage{}, nil
}

func paperPage(total int, ids ...string) *types.ResultPage {
	page := &types.ResultPage{Total: total}
	for _, id := range ids {
		page.Data = append(page.Data, types.Paper{PaperID: id})
	}
	return page
}

func TestFallbackFirstQueryWins(t *testing.T) {
	s := &fakeSearcher{pages: map[string]*types.ResultPage{
		"first":  paperPage(5, "p1", "p2"),
		"second": paperPage(9, "p3"),
	}}

	page, err := QueryWithFallback(context.Background(), s, []string{"first", "second"}, SearchOptions{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "first", page.QueryUsed)
	assert.Equal(t, 1, page.QueryAttempt)
	// Short-circuit: the second query is never attempted.
	assert.Equal(t, []string{"first"}, s.calls)
}

func TestFallbackSecondQueryWins(t *testing.T) {
	s := &fakeSearcher{pages: map[string]*types.ResultPage{
		"X": paperPage(0),
		"Y": paperPage(3, "p1", "p2", "p3"),
	}}

	start := time.Now()
	page, err := QueryWithFallback(context.Background(), s, []string{"X", "Y"}, SearchOptions{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "Y", page.QueryUsed)
	assert.Equal(t, 2, page.QueryAttempt)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, []string{"X", "Y"}, s.calls)
	// One inter-attempt delay between the empty attempt and the winner.
	assert.GreaterOrEqual(t, time.Since(start), InterAttemptDelay)
}

func TestFallbackAllEmpty(t *testing.T) {
	s := &fakeSearcher{}

	queries := []string{"a", "b", "c"}
	page, err := QueryWithFallback(context.Background(), s, queries, SearchOptions{}, io.Discard)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrNoResults)
	// Every attempt ran exactly once.
	assert.Equal(t, queries, s.calls)
}

func TestFallbackErrorsAreSwallowed(t *testing.T) {
	s := &fakeSearcher{
		errs: map[string]error{
			"broken":  &RemoteError{StatusCode: 500, Body: "boom"},
			"timeout": &TransportError{Err: context.DeadlineExceeded},
		},
		pages: map[string]*types.ResultPage{
			"works": paperPage(1, "p1"),
		},
	}

	page, err := QueryWithFallback(context.Background(), s, []string{"broken", "timeout", "works"}, SearchOptions{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "works", page.QueryUsed)
	assert.Equal(t, 3, page.QueryAttempt)
}

func TestFallbackAllErrored(t *testing.T) {
	s := &fakeSearcher{errs: map[string]error{
		"a": &TransportError{Err: context.DeadlineExceeded},
		"b": &RemoteError{StatusCode: 429, Body: "slow down"},
	}}

	_, err := QueryWithFallback(context.Background(), s, []string{"a", "b"}, SearchOptions{}, io.Discard)

	// Errors collapse into the same NotFound outcome as empty pages.
	assert.ErrorIs(t, err, ErrNoResults)
	assert.Len(t, s.calls, 2)
}

func TestFallbackEmptyQueryList(t *testing.T) {
	s := &fakeSearcher{}

	_, err := QueryWithFallback(context.Background(), s, nil, SearchOptions{}, io.Discard)

	assert.ErrorIs(t, err, ErrNoResults)
	assert.Empty(t, s.calls)
}

func TestFallbackVerboseTrace(t *testing.T) {
	s := &fakeSearcher{
		errs:  map[string]error{"bad": &RemoteError{StatusCode: 500}},
		pages: map[string]*types.ResultPage{"good": paperPage(2, "p1", "p2")},
	}

	var buf bytes.Buffer
	_, err := QueryWithFallback(context.Background(), s, []string{"bad", "empty", "good"}, SearchOptions{}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `Attempting query 1/3: "bad"`)
	assert.Contains(t, out, "Query failed")
	assert.Contains(t, out, "Query returned no results")
	assert.Contains(t, out, "Query succeeded with 2 results")
}

func TestFallbackContextCancelledDuringDelay(t *testing.T) {
	old := InterAttemptDelay
	InterAttemptDelay = 500 * time.Millisecond
	defer func() { InterAttemptDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := &fakeSearcher{}
	_, err := QueryWithFallback(ctx, s, []string{"a", "b"}, SearchOptions{}, io.Discard)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	// The second attempt never ran.
	assert.Equal(t, []string{"a"}, s.calls)
}

func TestFallbackNoDelayAfterLastAttempt(t *testing.T) {
	old := InterAttemptDelay
	InterAttemptDelay = 200 * time.Millisecond
	defer func() { InterAttemptDelay = old }()

	s := &fakeSearcher{}
	start := time.Now()
	_, err := QueryWithFallback(context.Background(), s, []string{"only"}, SearchOptions{}, io.Discard)
	assert.ErrorIs(t, err, ErrNoResults)

	if elapsed := time.Since(start); elapsed >= InterAttemptDelay {
		t.Errorf("single attempt slept %v, want no inter-attempt delay", elapsed)
	}
}

var _ Searcher = (*Client)(nil)

func TestFallbackStampsMatchSpecScenario(t *testing.T) {
	// queries = ["X", "Y"], X empty, Y three papers.
	s := &fakeSearcher{pages: map[string]*types.ResultPage{
		"Y": paperPage(3, "a", "b", "c"),
	}}

	page, err := QueryWithFallback(context.Background(), s, []string{"X", "Y"}, SearchOptions{}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Y", page.QueryUsed)
	assert.Equal(t, 2, page.QueryAttempt)
	require.Len(t, page.Data, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{page.Data[0].PaperID, page.Data[1].PaperID, page.Data[2].PaperID})
}
