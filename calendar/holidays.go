package calendar

import "sort"

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	IsHoliday(d Date) bool
}

// Holidays is a snapshot of a holiday calendar keyed by "YYYY-MM-DD".
// It must not be mutated while a resolution is reading it.
type Holidays map[string]string

// IsHoliday reports whether d's key is present.
func (h Holidays) IsHoliday(d Date) bool {
	_, ok := h[d.String()]
	return ok
}

// Name returns the holiday label for d.
func (h Holidays) Name(d Date) (string, bool) {
	name, ok := h[d.String()]
	return name, ok
}

// Holiday is one calendar entry.
type Holiday struct {
	Date Date
	Name string
}

// Sorted returns the entries in date order. Keys that do not parse are skipped.
func (h Holidays) Sorted() []Holiday {
	out := make([]Holiday, 0, len(h))
	for key, name := range h {
		d, err := ParseDate(key)
		if err != nil {
			continue
		}
		out = append(out, Holiday{Date: d, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// IsNonWorkingDay reports whether d is a Saturday, a Sunday, or listed in cal.
// A nil calendar means weekends only.
func IsNonWorkingDay(d Date, cal HolidayCalendar) bool {
	if d.IsWeekend() {
		return true
	}
	return cal != nil && cal.IsHoliday(d)
}
