package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-planner/calendar"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(context.Context) (calendar.Holidays, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return calendar.Holidays{"2025-01-01": "元日"}, nil
}

func TestHolidayRefreshScheduler_RunsImmediately(t *testing.T) {
	// GIVEN: A scheduler with a long interval
	r := &countingRefresher{}
	s := NewHolidayRefreshScheduler(r, time.Hour)

	// WHEN: It starts
	require.NoError(t, s.Start())
	defer s.Stop()

	// THEN: The first refresh does not wait for the interval
	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestHolidayRefreshScheduler_Disabled(t *testing.T) {
	r := &countingRefresher{}
	s := NewHolidayRefreshScheduler(r, 0)

	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())

	assert.Equal(t, int32(0), r.calls.Load())
}

func TestHolidayRefreshScheduler_StartTwice(t *testing.T) {
	r := &countingRefresher{}
	s := NewHolidayRefreshScheduler(r, time.Hour)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
}

func TestHolidayRefreshScheduler_RunOnceReturnsError(t *testing.T) {
	boom := errors.New("upstream down")
	s := NewHolidayRefreshScheduler(&countingRefresher{err: boom}, time.Hour)

	assert.ErrorIs(t, s.RunOnce(), boom)
}
