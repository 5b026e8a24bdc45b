package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
	"github.com/warp/leave-planner/store/sqlite"
)

var jst = time.FixedZone("JST", 9*3600)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:", sqlite.WithLocation(jst))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsertAndLatest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created := time.Date(2025, 2, 1, 0, 0, 0, 0, jst)
	rec, err := store.Insert(ctx, resignation.Record{
		RetirementDate:         calendar.MustParseDate("2025-01-01"),
		RemainingPaidLeaveDays: 5,
		CreatedAt:              created,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest.ID)
	assert.Equal(t, "2025-01-01", latest.RetirementDate.String())
	assert.Equal(t, 5, latest.RemainingPaidLeaveDays)
	assert.True(t, created.Equal(latest.CreatedAt))
	assert.Equal(t, "2025-02-01 00:00:00", latest.CreatedAt.Format(resignation.TimestampLayout))
}

func TestLatest_Empty(t *testing.T) {
	_, err := newTestStore(t).Latest(context.Background())

	assert.ErrorIs(t, err, resignation.ErrNotFound)
}

func TestLatest_PicksNewestCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Inserted out of order: created_at decides, not insertion order.
	fixtures := []struct {
		retirement string
		created    time.Time
	}{
		{"2025-03-01", time.Date(2025, 2, 1, 0, 0, 0, 0, jst)},
		{"2025-04-01", time.Date(2025, 1, 1, 0, 0, 0, 0, jst)},
		{"2025-05-01", time.Date(2024, 12, 1, 0, 0, 0, 0, jst)},
	}
	for _, f := range fixtures {
		_, err := store.Insert(ctx, resignation.Record{
			RetirementDate:         calendar.MustParseDate(f.retirement),
			RemainingPaidLeaveDays: 1,
			CreatedAt:              f.created,
		})
		require.NoError(t, err)
	}

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", latest.RetirementDate.String())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLatest_SameSecondUsesID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	created := time.Date(2025, 2, 1, 12, 30, 15, 0, jst)

	for _, d := range []string{"2025-03-01", "2025-04-01"} {
		_, err := store.Insert(ctx, resignation.Record{
			RetirementDate: calendar.MustParseDate(d), RemainingPaidLeaveDays: 1, CreatedAt: created,
		})
		require.NoError(t, err)
	}

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.ID)
}

func TestInsert_ConvertsToStoreLocation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Insert(ctx, resignation.Record{
		RetirementDate:         calendar.MustParseDate("2025-03-01"),
		RemainingPaidLeaveDays: 1,
		CreatedAt:              time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01 05:00:00", latest.CreatedAt.Format(resignation.TimestampLayout))
}

func TestRejectsNegativeBalance(t *testing.T) {
	_, err := newTestStore(t).Insert(context.Background(), resignation.Record{
		RetirementDate:         calendar.MustParseDate("2025-03-01"),
		RemainingPaidLeaveDays: -1,
		CreatedAt:              time.Now(),
	})

	assert.Error(t, err)
}

func TestFileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resignations.db")

	store, err := sqlite.New(path, sqlite.WithLocation(jst))
	require.NoError(t, err)
	_, err = store.Insert(ctx, resignation.Record{
		RetirementDate:         calendar.MustParseDate("2025-03-01"),
		RemainingPaidLeaveDays: 7,
		CreatedAt:              time.Date(2025, 2, 1, 0, 0, 0, 0, jst),
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path, sqlite.WithLocation(jst))
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	latest, err := reopened.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, latest.RemainingPaidLeaveDays)
}
