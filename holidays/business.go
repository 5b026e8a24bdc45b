package holidays

import (
	"context"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/warp/leave-planner/calendar"
)

// businessSourceURL names the offline source in FetchError.
const businessSourceURL = "rickar/cal:us"

// BusinessCalendar builds a calendar offline from rickar/cal holiday rules.
// It covers YearsBack years before and YearsAhead years after the current
// year, keyed by the observed date.
type BusinessCalendar struct {
	Holidays   []*cal.Holiday
	YearsBack  int
	YearsAhead int
	Now        func() time.Time
}

// NewUSFederal returns the US federal holidays for last year through next year.
func NewUSFederal() *BusinessCalendar {
	return &BusinessCalendar{
		Holidays: []*cal.Holiday{
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ColumbusDay,
			us.VeteransDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		},
		YearsBack:  1,
		YearsAhead: 1,
		Now:        time.Now,
	}
}

func (b *BusinessCalendar) Fetch(ctx context.Context) (calendar.Holidays, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{URL: businessSourceURL, Err: err}
	}

	year := b.Now().Year()
	out := make(calendar.Holidays)
	for y := year - b.YearsBack; y <= year+b.YearsAhead; y++ {
		for _, h := range b.Holidays {
			_, observed := h.Calc(y)
			if observed.IsZero() {
				continue
			}
			out[calendar.FromTime(observed).String()] = h.Name
		}
	}
	return out, nil
}
