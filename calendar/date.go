/*
Package calendar provides the day-granularity date type and the working-day
classifier used by the vacation planner.

DATE:
  Date is a calendar day with no time component. Internally it is UTC
  midnight so that arithmetic never crosses a DST boundary. The canonical
  text form is ISO "YYYY-MM-DD", which is also the key format of holiday
  calendars.

RANGE:
  The representable range starts at MinDate (0001-01-01). Anything earlier
  cannot be written as a four-digit ISO date and is rejected with
  ErrInvalidDate, both when parsing and when stepping backward.

SEE ALSO:
  - holidays.go: HolidayCalendar and IsNonWorkingDay
  - vacation/resolver.go: the backward walk built on PrevDay
*/
package calendar

import (
	"time"
)

// Layout is the ISO date layout used on the wire and as holiday keys.
const Layout = "2006-01-02"

// MinDate is the earliest representable date.
var MinDate = NewDate(1, time.January, 1)

// Date is a calendar day.
type Date struct {
	t time.Time
}

// NewDate builds a Date. Out-of-range components normalize the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, &InvalidDateError{Value: s, Reason: err.Error()}
	}
	d := Date{t: t}
	if d.Before(MinDate) {
		return Date{}, &InvalidDateError{Value: s, Reason: "before " + MinDate.String()}
	}
	return d, nil
}

// MustParseDate is ParseDate for literals in tests and fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// PrevDay returns the day before d, or an *InvalidDateError when that would
// fall before MinDate.
func (d Date) PrevDay() (Date, error) {
	if !d.After(MinDate) {
		return Date{}, &InvalidDateError{Value: d.String(), Reason: "no day before " + MinDate.String()}
	}
	return d.AddDays(-1), nil
}

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string { return d.t.Format(Layout) }
