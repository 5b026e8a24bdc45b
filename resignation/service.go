/*
service.go - Boundary for creating and reading resignation records

VALIDATION:
  Input is checked with go-playground/validator before anything is stored:
  - retirement date is required and must be "YYYY-MM-DD"
  - retirement date must be strictly after today (future_date)
  - remaining paid leave days is required and within 0..2^32-1

  "Today" is the current day in the service location, the same location
  CreatedAt is recorded in, so the invariant RetirementDate > creation date
  holds for every stored record.

CLOCK:
  Now and Location are injectable so tests can pin the current time.
*/
package resignation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/warp/leave-planner/calendar"
)

// Service validates input and talks to the Store.
type Service struct {
	Store    Store
	Now      func() time.Time
	Location *time.Location

	validate *validator.Validate
}

// NewService creates a service recording timestamps in loc.
func NewService(store Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		Store:    store,
		Now:      time.Now,
		Location: loc,
		validate: validator.New(),
	}
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = s.validate.RegisterValidation("future_date", s.isFutureDate)
	return s
}

// Today returns the current day in the service location.
func (s *Service) Today() calendar.Date {
	return calendar.FromTime(s.Now().In(s.Location))
}

func (s *Service) isFutureDate(fl validator.FieldLevel) bool {
	d, err := calendar.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return d.After(s.Today())
}

// Create validates in and inserts a new record stamped with the current time.
func (s *Service) Create(ctx context.Context, in Input) (Record, error) {
	if err := s.validate.Struct(in); err != nil {
		return Record{}, toValidationError(err)
	}

	retirement, err := calendar.ParseDate(in.RetirementDate)
	if err != nil {
		return Record{}, &ValidationError{Fields: []FieldError{{Field: "retirementDate", Message: err.Error()}}}
	}

	rec := Record{
		RetirementDate:         retirement,
		RemainingPaidLeaveDays: *in.RemainingPaidLeaveDays,
		CreatedAt:              s.Now().In(s.Location).Truncate(time.Second),
	}
	return s.Store.Insert(ctx, rec)
}

// Latest returns the most recently created record.
func (s *Service) Latest(ctx context.Context) (Record, error) {
	return s.Store.Latest(ctx)
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate resignation: %w", err)
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   jsonName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "RetirementDate":
		return "retirementDate"
	case "RemainingPaidLeaveDays":
		return "remainingPaidLeaveDays"
	}
	return field
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must be a date in YYYY-MM-DD format, actual: %v", fe.Value())
	case "future_date":
		return fmt.Sprintf("please set a future date, actual: %v", fe.Value())
	case "gte":
		return "must not be negative"
	case "lte":
		return "is too large"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
