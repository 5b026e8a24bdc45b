package vacation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
)

// LatestRecord is the part of the resignation store the planner needs.
type LatestRecord interface {
	Latest(ctx context.Context) (resignation.Record, error)
}

// HolidaySource supplies a holiday calendar snapshot.
type HolidaySource interface {
	Fetch(ctx context.Context) (calendar.Holidays, error)
}

// Plan is a resolved start date together with the record it was computed from.
type Plan struct {
	Resignation resignation.Record
	StartDate   calendar.Date
}

// Planner loads the latest record and the holiday calendar, then resolves the
// start date. Lookup errors are returned unmodified. When only the resolution
// fails, the returned Plan still carries the record.
type Planner struct {
	Records  LatestRecord
	Holidays HolidaySource
}

// NewPlanner creates a planner.
func NewPlanner(records LatestRecord, holidays HolidaySource) *Planner {
	return &Planner{Records: records, Holidays: holidays}
}

// Plan runs both lookups concurrently and resolves the start date.
func (p *Planner) Plan(ctx context.Context) (Plan, error) {
	var (
		record   resignation.Record
		holidays calendar.Holidays
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := p.Records.Latest(gctx)
		if err != nil {
			return err
		}
		record = r
		return nil
	})
	g.Go(func() error {
		h, err := p.Holidays.Fetch(gctx)
		if err != nil {
			return err
		}
		holidays = h
		return nil
	})
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}

	start, err := StartDate(record.RetirementDate, record.RemainingPaidLeaveDays, holidays)
	if err != nil {
		return Plan{Resignation: record}, err
	}
	return Plan{Resignation: record, StartDate: start}, nil
}
