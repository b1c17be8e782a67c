package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServer pages a fixed club list through /find_clubs the way the API
// does: limit/offset windows plus the full total on every page.
type catalogServer struct {
	clubs []SearchResult
}

func (s *catalogServer) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/find_clubs", r.URL.Path)

		limit := len(s.clubs)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			var err error
			limit, err = strconv.Atoi(raw)
			require.NoError(t, err)
		}
		offset := 0
		if raw := r.URL.Query().Get("offset"); raw != "" {
			var err error
			offset, err = strconv.Atoi(raw)
			require.NoError(t, err)
		}

		results := []SearchResult{}
		for i := offset; i < len(s.clubs) && i < offset+limit; i++ {
			results = append(results, s.clubs[i])
		}

		writeEnvelope(t, w, http.StatusOK, SearchPage{Results: results, Total: len(s.clubs)})
	})
}

func fakeCatalog(n int) []SearchResult {
	out := make([]SearchResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SearchResult{Club: Club{ID: "club-" + strconv.Itoa(i)}})
	}
	return out
}

func TestSearchState_Navigation(t *testing.T) {
	catalog := &catalogServer{clubs: fakeCatalog(5)}
	server := httptest.NewServer(catalog.handler(t))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	state := NewSearchState(c, SearchCriteria{ZipCode: "93953", RadiusMiles: 10}, 2)
	ctx := context.Background()

	page, err := state.Search(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
	assert.Equal(t, 3, state.TotalPages())
	assert.Equal(t, 5, state.Total())
	require.Len(t, page.Results, 2)
	assert.Equal(t, "club-0", page.Results[0].ID)

	page, err = state.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Page())
	assert.Equal(t, "club-2", page.Results[0].ID)

	page, err = state.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Page())
	require.Len(t, page.Results, 1)
	assert.Equal(t, "club-4", page.Results[0].ID)

	// Next off the last page stays on the last page.
	page, err = state.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Page())
	require.Len(t, page.Results, 1)

	page, err = state.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
	assert.Equal(t, "club-0", page.Results[0].ID)

	// Prev off the first page stays on the first page.
	_, err = state.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
}

func TestSearchState_PagesPartitionTheResult(t *testing.T) {
	catalog := &catalogServer{clubs: fakeCatalog(5)}
	server := httptest.NewServer(catalog.handler(t))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	state := NewSearchState(c, SearchCriteria{ZipCode: "93953"}, 2)
	ctx := context.Background()

	seen := map[string]int{}
	page, err := state.Search(ctx)
	require.NoError(t, err)
	for {
		for _, result := range page.Results {
			seen[result.ID]++
		}
		if state.Page() == state.TotalPages() {
			break
		}
		page, err = state.Next(ctx)
		require.NoError(t, err)
	}

	assert.Len(t, seen, 5)
	for id, count := range seen {
		assert.Equal(t, 1, count, "club %s appeared on more than one page", id)
	}
}

func TestSearchState_SetCriteriaRewindsAndRecomputes(t *testing.T) {
	catalog := &catalogServer{clubs: fakeCatalog(5)}
	server := httptest.NewServer(catalog.handler(t))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	state := NewSearchState(c, SearchCriteria{ZipCode: "93953"}, 2)
	ctx := context.Background()

	_, err = state.Last(ctx)
	require.NoError(t, err)
	_, err = state.Last(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, state.Page())

	catalog.clubs = fakeCatalog(3)
	state.SetCriteria(SearchCriteria{ZipCode: "93953", PriceTier: "$"})

	page, err := state.Search(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
	assert.Equal(t, 2, state.TotalPages())
	assert.Equal(t, 3, state.Total())
	require.Len(t, page.Results, 2)
}

func TestSearchState_RestoreClampsStalePage(t *testing.T) {
	catalog := &catalogServer{clubs: fakeCatalog(5)}
	server := httptest.NewServer(catalog.handler(t))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	state := NewSearchState(c, SearchCriteria{ZipCode: "93953"}, 2)
	ctx := context.Background()

	_, err = state.Last(ctx)
	require.NoError(t, err)
	_, err = state.Last(ctx)
	require.NoError(t, err)
	snap := state.Snapshot()
	require.Equal(t, 3, snap.Page)

	// The catalog shrank between sessions; page 3 no longer exists.
	catalog.clubs = fakeCatalog(3)

	restored := NewSearchState(c, SearchCriteria{}, 1)
	page, err := restored.Restore(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Page(), "stale page clamps to the last page")
	assert.Equal(t, 2, restored.TotalPages())
	require.Len(t, page.Results, 1)
	assert.Equal(t, "club-2", page.Results[0].ID)

	_, err = restored.Restore(ctx, Snapshot{Criteria: snap.Criteria, Page: 1, PageSize: 0})
	require.Error(t, err, "a snapshot without a page size is invalid")
}
