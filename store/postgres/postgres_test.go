package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
	"github.com/warp/leave-planner/store/postgres"
)

// Runs only against a disposable database named by POSTGRES_TEST_DSN.
func TestInsertAndLatest(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	jst := time.FixedZone("JST", 9*3600)
	store, err := postgres.Open(dsn, jst)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	created := time.Now().In(jst).Add(24 * time.Hour).Truncate(time.Second)
	rec, err := store.Insert(ctx, resignation.Record{
		RetirementDate:         calendar.MustParseDate("2099-01-01"),
		RemainingPaidLeaveDays: 12,
		CreatedAt:              created,
	})
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, latest.ID)
	assert.Equal(t, "2099-01-01", latest.RetirementDate.String())
	assert.Equal(t, 12, latest.RemainingPaidLeaveDays)
	assert.True(t, created.Equal(latest.CreatedAt))
}
