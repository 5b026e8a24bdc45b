package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-planner/calendar"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := calendar.ParseDate("2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, "2025-01-01", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"2025-01-32", "2025-13-01", "20250101", "", "0000-12-31", "2025-1-1"} {
		_, err := calendar.ParseDate(s)
		assert.Error(t, err, s)
		assert.True(t, errors.Is(err, calendar.ErrInvalidDate), s)
	}
}

func TestPrevDay_CrossesMonthAndYear(t *testing.T) {
	d, err := calendar.MustParseDate("2025-01-01").PrevDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", d.String())

	d, err = calendar.MustParseDate("2024-03-01").PrevDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestPrevDay_UnderflowAtMinDate(t *testing.T) {
	_, err := calendar.MinDate.PrevDay()

	var invalid *calendar.InvalidDateError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "0001-01-01", invalid.Value)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestFromTime_UsesWallClockOfLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	// 2024-12-31 20:00 UTC is already 2025-01-01 in Tokyo.
	ts := time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC).In(jst)

	assert.Equal(t, "2025-01-01", calendar.FromTime(ts).String())
}

func TestIsNonWorkingDay(t *testing.T) {
	holidays := calendar.Holidays{"2025-01-01": "元日"}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-01-01", true},  // Wednesday, holiday
		{"2025-01-02", false}, // Thursday
		{"2025-01-04", true},  // Saturday
		{"2025-01-05", true},  // Sunday
		{"2025-01-06", false}, // Monday
	}
	for _, tt := range tests {
		got := calendar.IsNonWorkingDay(calendar.MustParseDate(tt.date), holidays)
		assert.Equal(t, tt.want, got, tt.date)
	}
}

func TestIsNonWorkingDay_NilCalendarIsWeekendOnly(t *testing.T) {
	assert.False(t, calendar.IsNonWorkingDay(calendar.MustParseDate("2025-01-01"), nil))
	assert.True(t, calendar.IsNonWorkingDay(calendar.MustParseDate("2025-01-04"), nil))
}

func TestHolidays_SortedSkipsMalformedKeys(t *testing.T) {
	h := calendar.Holidays{
		"2025-01-13": "成人の日",
		"2025-01-01": "元日",
		"not-a-date": "junk",
	}

	sorted := h.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "2025-01-01", sorted[0].Date.String())
	assert.Equal(t, "元日", sorted[0].Name)
	assert.Equal(t, "2025-01-13", sorted[1].Date.String())

	name, ok := h.Name(calendar.MustParseDate("2025-01-13"))
	assert.True(t, ok)
	assert.Equal(t, "成人の日", name)
}
