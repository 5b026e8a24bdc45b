package holidays

import (
	"errors"
	"fmt"
)

// ErrFetch is returned when the holiday calendar cannot be obtained.
var ErrFetch = errors.New("holiday fetch failed")

// FetchError describes a failed or malformed holiday lookup. It matches both
// ErrFetch and the underlying cause with errors.Is.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch holidays from %s: unexpected status %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch holidays from %s: %v", e.URL, e.Err)
	}
	return "fetch holidays from " + e.URL
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}
