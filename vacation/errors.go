package vacation

import (
	"errors"
	"fmt"

	"github.com/warp/leave-planner/calendar"
)

// ErrNoLeaveBalance is returned when there is no paid leave left to schedule.
// The user can fix this by recording a balance greater than zero.
var ErrNoLeaveBalance = errors.New("no paid leave remaining")

// NoLeaveBalanceError provides the record values that produced ErrNoLeaveBalance.
type NoLeaveBalanceError struct {
	RetirementDate calendar.Date
	Remaining      int
}

func (e *NoLeaveBalanceError) Error() string {
	return fmt.Sprintf("no paid leave remaining: balance %d for retirement on %s",
		e.Remaining, e.RetirementDate)
}

func (e *NoLeaveBalanceError) Unwrap() error {
	return ErrNoLeaveBalance
}
