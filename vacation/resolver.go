/*
resolver.go - Vacation start date resolution

PURPOSE:
  Answers: on which day must paid leave start so that the remaining balance
  runs out exactly on the retirement date, skipping weekends and holidays?

ALGORITHM:
  1. A zero balance is an error (there is nothing to schedule).
  2. The retirement date is classified once. If it is a working day it
     consumes one day of the balance.
  3. Walk backward one calendar day at a time. Non-working days are skipped,
     working days consume one day of the balance.
  4. The day on which the balance reaches zero is the start date.

  Example (the fixture used in resolver_test.go):
    Retirement 2025-01-01 (holiday), balance 10,
    holidays {2025-01-01, 2024-12-31, 2024-12-29, 2024-12-28}

    2025-01-01  holiday   10
    2024-12-31  holiday   10
    2024-12-30  Mon        9
    2024-12-29  Sun        9
    2024-12-28  Sat        9
    2024-12-27 .. 12-23    4
    2024-12-22 .. 12-21    4  weekend
    2024-12-20 .. 12-17    0  -> start date 2024-12-17

PURITY:
  StartDate does no I/O and keeps no state. Inputs are read only, so it is
  safe to call concurrently on independent snapshots.

SEE ALSO:
  - planner.go: fetches the inputs and calls StartDate
  - calendar/holidays.go: IsNonWorkingDay
*/
package vacation

import (
	"github.com/warp/leave-planner/calendar"
)

// StartDate returns the first day of paid leave for the given retirement date
// and balance.
//
// Errors:
//   - *NoLeaveBalanceError when remaining <= 0
//   - *calendar.InvalidDateError when the walk runs past calendar.MinDate
func StartDate(retirement calendar.Date, remaining int, holidays calendar.HolidayCalendar) (calendar.Date, error) {
	if remaining <= 0 {
		return calendar.Date{}, &NoLeaveBalanceError{RetirementDate: retirement, Remaining: remaining}
	}

	cursor := retirement
	if !calendar.IsNonWorkingDay(cursor, holidays) {
		remaining--
	}

	for remaining > 0 {
		prev, err := cursor.PrevDay()
		if err != nil {
			return calendar.Date{}, err
		}
		cursor = prev
		if calendar.IsNonWorkingDay(cursor, holidays) {
			continue
		}
		remaining--
	}

	return cursor, nil
}
