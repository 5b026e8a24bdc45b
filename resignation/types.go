package resignation

import (
	"time"

	"github.com/warp/leave-planner/calendar"
)

// TimestampLayout is the wire and storage format of CreatedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one resignation entry. Records are immutable once inserted.
type Record struct {
	ID                     int64
	RetirementDate         calendar.Date
	RemainingPaidLeaveDays int
	CreatedAt              time.Time
}

// Input is an unvalidated request to create a record.
type Input struct {
	RetirementDate         string `validate:"required,datetime=2006-01-02,future_date"`
	RemainingPaidLeaveDays *int   `validate:"required,gte=0,lte=4294967295"`
}
