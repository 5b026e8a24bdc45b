package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is returned for unparseable dates and for walks that leave
// the representable range.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError carries the offending value.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}
