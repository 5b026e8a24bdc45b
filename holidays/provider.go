/*
Package holidays supplies holiday calendar snapshots to the planner.

SOURCES:
  Client            holidays-jp.github.io JSON API (default)
  BusinessCalendar  offline US federal holidays from rickar/cal
  CachedProvider    wraps any Provider with a Cache (Redis in production)

CONTRACT:
  Fetch returns a fresh map the caller may keep. Malformed upstream data is
  an error (*FetchError), never an empty calendar: an empty calendar would
  silently turn every holiday into a working day.
*/
package holidays

import (
	"context"

	"github.com/warp/leave-planner/calendar"
)

// Provider returns the current holiday calendar.
type Provider interface {
	Fetch(ctx context.Context) (calendar.Holidays, error)
}

// Static is a fixed calendar, handy for tests and demos.
type Static calendar.Holidays

func (s Static) Fetch(context.Context) (calendar.Holidays, error) {
	out := make(calendar.Holidays, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}
