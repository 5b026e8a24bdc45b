package holidays_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/holidays"
	"github.com/warp/leave-planner/vacation"
)

func TestBusinessCalendar_USFederal(t *testing.T) {
	b := holidays.NewUSFederal()
	b.Now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }

	h, err := b.Fetch(context.Background())
	require.NoError(t, err)

	// 2025
	assert.Contains(t, h, "2025-07-04")
	assert.Contains(t, h, "2025-10-13") // Columbus Day
	assert.Contains(t, h, "2025-11-11") // Veterans Day
	assert.Contains(t, h, "2025-11-27")
	assert.Contains(t, h, "2025-12-25")
	// last year and next year are covered too
	assert.Contains(t, h, "2024-12-25")
	assert.Contains(t, h, "2026-12-25")
	assert.NotContains(t, h, "2023-12-25")
	assert.NotContains(t, h, "2027-12-25")

	for date, name := range h {
		assert.NotEmpty(t, name, date)
	}
}

func TestBusinessCalendar_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := holidays.NewUSFederal().Fetch(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, holidays.ErrFetch)
}

func TestBusinessCalendar_SkipsVeteransDay(t *testing.T) {
	// GIVEN: The offline calendar for 2025
	b := holidays.NewUSFederal()
	b.Now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	h, err := b.Fetch(context.Background())
	require.NoError(t, err)

	// WHEN: Two days are taken before retiring on Wed 2025-11-12
	start, err := vacation.StartDate(calendar.MustParseDate("2025-11-12"), 2, h)

	// THEN: Tue 2025-11-11 is a holiday, so leave starts on Monday
	require.NoError(t, err)
	assert.Equal(t, "2025-11-10", start.String())
}
