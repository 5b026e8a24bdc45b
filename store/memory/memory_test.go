package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
	"github.com/warp/leave-planner/store/memory"
)

func TestLatest_OrdersByCreatedAtThenID(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	t0 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Insert(ctx, resignation.Record{RetirementDate: calendar.MustParseDate("2025-05-01"), CreatedAt: t0.Add(time.Hour)})
	require.NoError(t, err)
	_, err = store.Insert(ctx, resignation.Record{RetirementDate: calendar.MustParseDate("2025-04-01"), CreatedAt: t0})
	require.NoError(t, err)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest.ID)

	// Same timestamp as the current latest: the newer ID wins.
	_, err = store.Insert(ctx, resignation.Record{RetirementDate: calendar.MustParseDate("2025-06-01"), CreatedAt: t0.Add(time.Hour)})
	require.NoError(t, err)

	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.ID)
	assert.Equal(t, "2025-06-01", latest.RetirementDate.String())
}

func TestLatest_Empty(t *testing.T) {
	_, err := memory.New().Latest(context.Background())

	assert.ErrorIs(t, err, resignation.ErrNotFound)
}
