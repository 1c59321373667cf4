// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-search/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")

	queries := []string{"rapamycin longevity", "mTOR inhibition aging"}
	opts := SearchOptions{
		Limit:      20,
		YearFilter: "2020-",
		Sort:       SortCitations,
	}
	page := &types.ResultPage{
		Total:        12,
		Data:         []types.Paper{{PaperID: "p1", Title: "Winner"}},
		QueryUsed:    "mTOR inhibition aging",
		QueryAttempt: 2,
	}

	require.NoError(t, WriteQueryFile(path, queries, opts, page))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)

	assert.Equal(t, queries, qf.Queries)
	assert.Equal(t, 20, qf.Params.Limit)
	assert.Equal(t, "2020-", qf.Params.YearFilter)
	assert.Equal(t, "citations", qf.Params.Sort)

	require.NotNil(t, qf.Result)
	assert.Equal(t, "mTOR inhibition aging", qf.Result.QueryUsed)
	assert.Equal(t, 2, qf.Result.QueryAttempt)

	require.NotNil(t, qf.Summary)
	assert.Equal(t, 2, qf.Summary.TotalAttempts)
	assert.Equal(t, 12, qf.Summary.Total)
	assert.Equal(t, 1, qf.Summary.Shown)
	assert.False(t, qf.Summary.Timestamp.IsZero())
}

func TestReadQueryFileQueriesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	content := "queries:\n  - NAD+ longevity\n  - nicotinamide aging\nparams:\n  limit: 5\n  date_filter: \"2025-01-01:\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NAD+ longevity", "nicotinamide aging"}, qf.Queries)

	opts := qf.Params.ToOptions()
	assert.Equal(t, 5, opts.Limit)
	assert.Equal(t, "2025-01-01:", opts.DateFilter)
	// Sort defaults to recent when the file does not set it.
	assert.Equal(t, SortRecent, opts.Sort)
}

func TestReadQueryFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty query list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("queries: []\n"), 0o644))
		_, err := ReadQueryFile(path)
		assert.ErrorContains(t, err, "no queries")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("queries: [unclosed"), 0o644))
		_, err := ReadQueryFile(path)
		assert.ErrorContains(t, err, "parsing")
	})
}
