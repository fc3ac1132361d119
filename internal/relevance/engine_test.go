package relevance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func setupTestEngine(t *testing.T) (*Engine, *storage.SQLiteStore) {
	t.Helper()
	store, err := storage.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	engine := NewEngine(store, NewTracker())
	return engine, store
}

func seedEngineDocs(t *testing.T, store *storage.SQLiteStore) {
	t.Helper()
	ctx := context.Background()

	docs := []*types.Document{
		{
			URL:         "https://docs.example.com/start/quickstart",
			Title:       "Quickstart",
			Content:     "Create a new project and install the Amplify backend packages.",
			Category:    types.CategoryGettingStarted,
			LastScraped: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			URL:         "https://docs.example.com/backend/auth",
			Title:       "Authentication",
			Content:     "Configure defineAuth with loginWith email and authorization rules using allow.owner.",
			Category:    types.CategoryBackend,
			LastScraped: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			URL:         "https://docs.example.com/guides/auth-best-practices",
			Title:       "Auth Best Practices",
			Content:     "Recommended authorization and authentication patterns.",
			Category:    types.CategoryGuides,
			LastScraped: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, d := range docs {
		require.NoError(t, store.UpsertDocument(ctx, d))
	}
}

func TestEngineSearch(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)

	resp, err := engine.Search(context.Background(), SearchRequest{Query: "owner authorization"})
	require.NoError(t, err)

	assert.Equal(t, types.IntentAuth, resp.Intent)
	require.NotEmpty(t, resp.Results)

	// The backend auth page wins: category affinity plus expanded-term
	// matches outrank the best-practices guide.
	assert.Equal(t, "Authentication", resp.Results[0].Document.Title)
	assert.NotEmpty(t, resp.Results[0].BoostReasons)
	assert.Nil(t, resp.Suggestions)
}

func TestEngineSearchRankingDescending(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)

	resp, err := engine.Search(context.Background(), SearchRequest{Query: "authentication"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Score(), resp.Results[i].Score())
	}
}

func TestEngineSearchEmptyQuery(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)

	resp, err := engine.Search(context.Background(), SearchRequest{Query: "   "})
	require.NoError(t, err)

	assert.Equal(t, types.IntentGeneral, resp.Intent)
	assert.Empty(t, resp.Warnings)
	assert.Empty(t, resp.Results)
}

func TestEngineSearchOwnerFieldScenario(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)

	resp, err := engine.Search(context.Background(), SearchRequest{Query: "ownerField"})
	require.NoError(t, err)

	assert.Equal(t, types.IntentAuth, resp.Intent)
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0].Message, ".ownerField().identityClaim()")

	// Expansion pulls in "authorization", which both auth pages contain.
	assert.NotEmpty(t, resp.Results)
}

func TestEngineStrugglingSuggestions(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)
	ctx := context.Background()

	// Three consecutive misses; vary the query so the cache is not involved.
	for _, q := range []string{"zzz one", "zzz two", "zzz three"} {
		resp, err := engine.Search(ctx, SearchRequest{Query: q})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	}

	resp, err := engine.Search(ctx, SearchRequest{Query: "zzz four"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Suggestions)

	// A hit clears the struggling state.
	resp, err = engine.Search(ctx, SearchRequest{Query: "authentication"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Results)

	resp, err = engine.Search(ctx, SearchRequest{Query: "zzz five"})
	require.NoError(t, err)
	assert.Nil(t, resp.Suggestions)
}

func TestEngineCacheHitStillRecordsOutcome(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)
	ctx := context.Background()

	// Same query four times: the later calls are cache hits, but each one
	// still records a miss, so the struggling block appears.
	for i := 0; i < 3; i++ {
		resp, err := engine.Search(ctx, SearchRequest{Query: "zzz repeated"})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
	}

	resp, err := engine.Search(ctx, SearchRequest{Query: "zzz repeated"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestEngineCategoryFilter(t *testing.T) {
	engine, store := setupTestEngine(t)
	seedEngineDocs(t, store)

	resp, err := engine.Search(context.Background(), SearchRequest{
		Query:    "authorization",
		Category: string(types.CategoryGuides),
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Auth Best Practices", resp.Results[0].Document.Title)

	// Unknown categories yield an empty result set, not an error.
	resp, err = engine.Search(context.Background(), SearchRequest{
		Query:    "authorization",
		Category: "no-such-category",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

// failingStore overrides SearchDocuments to simulate unreachable storage.
type failingStore struct {
	storage.Store
}

func (failingStore) SearchDocuments(ctx context.Context, q storage.SearchQuery) ([]storage.SearchHit, error) {
	return nil, errors.New("disk on fire")
}

func TestEngineSearchUnavailable(t *testing.T) {
	engine := NewEngine(failingStore{}, NewTracker())

	_, err := engine.Search(context.Background(), SearchRequest{Query: "anything"})
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
