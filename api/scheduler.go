/*
scheduler.go - Holiday cache warm-up

PURPOSE:
  Keeps the cached holiday calendar fresh so request paths rarely pay for a
  remote fetch. Only started when a cache is configured (REDIS_URL).

DESIGN:
  - gocron duration job, first run immediately on Start
  - Singleton mode: a slow fetch delays the next run instead of overlapping
  - Each run is bounded by Timeout
  - Failures are logged; the previous cached snapshot stays until its TTL

USAGE:
  scheduler := NewHolidayRefreshScheduler(cachedProvider, 6*time.Hour)
  if err := scheduler.Start(); err != nil { ... }
  defer scheduler.Stop()

SEE ALSO:
  - holidays/cache.go: CachedProvider.Refresh
*/
package api

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/warp/leave-planner/calendar"
)

// Refresher reloads the holiday calendar into the cache.
type Refresher interface {
	Refresh(ctx context.Context) (calendar.Holidays, error)
}

// HolidayRefreshScheduler periodically calls Refresh.
type HolidayRefreshScheduler struct {
	Refresher Refresher
	Interval  time.Duration
	Timeout   time.Duration
	Logger    *slog.Logger

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

// NewHolidayRefreshScheduler creates a scheduler. An interval <= 0 disables it.
func NewHolidayRefreshScheduler(r Refresher, interval time.Duration) *HolidayRefreshScheduler {
	return &HolidayRefreshScheduler{
		Refresher: r,
		Interval:  interval,
		Timeout:   30 * time.Second,
		Logger:    slog.Default(),
	}
}

// Start begins the scheduler.
func (s *HolidayRefreshScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Interval <= 0 {
		s.Logger.Info("holiday_refresh_disabled")
		return nil
	}
	if s.scheduler != nil {
		return nil
	}

	sch, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sch.NewJob(
		gocron.DurationJob(s.Interval),
		gocron.NewTask(s.RunOnce),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		sch.Shutdown()
		return err
	}

	sch.Start()
	s.scheduler = sch
	s.Logger.Info("holiday_refresh_started", "interval", s.Interval.String())
	return nil
}

// Stop shuts the scheduler down and waits for a running refresh to finish.
func (s *HolidayRefreshScheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return nil
	}
	err := s.scheduler.Shutdown()
	s.scheduler = nil
	s.Logger.Info("holiday_refresh_stopped")
	return err
}

// RunOnce refreshes the cache a single time.
func (s *HolidayRefreshScheduler) RunOnce() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	h, err := s.Refresher.Refresh(ctx)
	if err != nil {
		s.Logger.Warn("holiday_refresh_failed", "error", err.Error())
		return err
	}
	s.Logger.Info("holiday_refresh_succeeded", "holidays", len(h))
	return nil
}
