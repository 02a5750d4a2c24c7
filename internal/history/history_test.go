package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndGetByID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Now().UTC().Add(-time.Minute)
	rec, err := store.Insert(ctx, Record{
		Suite:      "tenants",
		Passed:     true,
		Summary:    "9 passed (tenants)",
		Output:     "ok   create tenant\n9 passed (tenants)\n",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, err := store.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "tenants", got.Suite)
	assert.True(t, got.Passed)
	assert.Equal(t, "9 passed (tenants)", got.Summary)
	assert.Contains(t, got.Output, "create tenant")
	assert.WithinDuration(t, started, got.StartedAt, time.Second)
}

func TestGetByID_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetByID(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRecent_NewestFirstWithoutOutput(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, suite := range []string{"tenants", "vehicles", "geofences"} {
		_, err := store.Insert(ctx, Record{
			Suite:      suite,
			Passed:     i%2 == 0,
			Summary:    "done",
			Output:     "long output",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + 10*time.Second),
		})
		require.NoError(t, err)
	}

	runs, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "geofences", runs[0].Suite)
	assert.Equal(t, "vehicles", runs[1].Suite)
	assert.Empty(t, runs[0].Output, "listing omits output")
}

func TestListRecent_OrdersWithinTheSameSecond(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// A whole-second timestamp and a fractional one in the same second:
	// trailing-zero-trimming formats make the earlier value sort later as
	// text, so the ordering must survive this pair.
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	earlier := base
	later := base.Add(500 * time.Millisecond)

	for _, rec := range []Record{
		{Suite: "whole-second", StartedAt: earlier, FinishedAt: earlier},
		{Suite: "half-second", StartedAt: later, FinishedAt: later},
	} {
		_, err := store.Insert(ctx, rec)
		require.NoError(t, err)
	}

	runs, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "half-second", runs[0].Suite)
	assert.Equal(t, "whole-second", runs[1].Suite)
	assert.Equal(t, later, runs[0].StartedAt)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	first, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer second.Close()

	_, err = second.Insert(ctx, Record{
		Suite: "tenants", Summary: "ok",
		StartedAt: time.Now(), FinishedAt: time.Now(),
	})
	assert.NoError(t, err)
}
