package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
)

func newTestStore(t *testing.T) *FixtureStore {
	store, err := NewFixtureStore(filepath.Join(t.TempDir(), "fixtures.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testFixture(id string, date time.Time, opponent string, home bool) domain.Fixture {
	f := domain.Fixture{
		ID:          id,
		Date:        date,
		Opponent:    opponent,
		Competition: "Premier League",
		IsHome:      home,
	}
	if home {
		f.HomeTeam, f.AwayTeam = "Manchester United", opponent
	} else {
		f.HomeTeam, f.AwayTeam = opponent, "Manchester United"
	}
	return f
}

func TestFixtureStore_ReplaceAllAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := testFixture("a", time.Date(2025, 11, 8, 12, 30, 0, 0, time.UTC), "Tottenham Hotspur", false)
	newer := testFixture("b", time.Date(2025, 11, 22, 17, 30, 0, 0, time.UTC), "Chelsea", true)

	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{older, newer}))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer, got[0])
	assert.Equal(t, older, got[1])
}

func TestFixtureStore_ReplaceAllDropsOldFixtures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	kickoff := time.Date(2025, 11, 8, 12, 30, 0, 0, time.UTC)

	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{testFixture("a", kickoff, "Everton", true)}))
	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{testFixture("b", kickoff, "Fulham", true)}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.Get(ctx, "a")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestFixtureStore_ReplaceAllIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	kickoff := time.Date(2025, 11, 8, 12, 30, 0, 0, time.UTC)

	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{testFixture("keep", kickoff, "Everton", true)}))

	invalid := domain.Fixture{ID: "broken"}
	err := store.ReplaceAll(ctx, []domain.Fixture{testFixture("new", kickoff, "Fulham", true), invalid})
	require.Error(t, err)

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ID)
}

func TestFixtureStore_Get(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	f := testFixture("x", time.Date(2026, 1, 4, 15, 0, 0, 0, time.UTC), "Leeds United", false)

	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{f}))

	got, err := store.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, f, *got)
	assert.Equal(t, time.UTC, got.Date.Location())

	_, err = store.Get(ctx, "missing")
	assert.True(t, coreerrors.IsNotFound(err))

	_, err = store.Get(ctx, "")
	assert.Error(t, err)
}

func TestFixtureStore_EmptyList(t *testing.T) {
	got, err := newTestStore(t).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFixtureStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.db")
	ctx := context.Background()

	store, err := NewFixtureStore(path)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(ctx, []domain.Fixture{testFixture("a", time.Date(2025, 12, 1, 20, 0, 0, 0, time.UTC), "Arsenal", true)}))
	require.NoError(t, store.Close())

	reopened, err := NewFixtureStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
