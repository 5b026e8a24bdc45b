/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  domain types in resignation/ and vacation/.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

FIELD NAMES:
  camelCase, matching the field names the web client already reads
  (retirementDate, remainingPaidLeaveDays, createdAt, vacationStartDate).

FORMATS:
  Dates       "YYYY-MM-DD"
  Timestamps  "YYYY-MM-DD HH:MM:SS" in the service location
  IDs         decimal strings

VALIDATION:
  Validation is done by resignation.Service, not in DTOs.
*/
package api

import (
	"strconv"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
)

// ResignationDTO represents a resignation record in API responses.
type ResignationDTO struct {
	ID                     string `json:"id"`
	RetirementDate         string `json:"retirementDate"`
	RemainingPaidLeaveDays int    `json:"remainingPaidLeaveDays"`
	CreatedAt              string `json:"createdAt"`
}

// CreateResignationRequest is the request to create a resignation record.
type CreateResignationRequest struct {
	RetirementDate         string `json:"retirementDate"`
	RemainingPaidLeaveDays *int   `json:"remainingPaidLeaveDays"`
}

// VacationStartDateDTO is the resolved first day of leave.
type VacationStartDateDTO struct {
	VacationStartDate string `json:"vacationStartDate"`
}

// OverviewResponse combines the latest record and its start date. When the
// start date cannot be resolved it is null and Errors explains why.
type OverviewResponse struct {
	LatestResignation ResignationDTO `json:"latestResignation"`
	VacationStartDate *string        `json:"vacationStartDate"`
	Errors            []string       `json:"errors,omitempty"`
}

// HolidayDTO is one holiday calendar entry.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// HolidaysResponse lists holidays in date order.
type HolidaysResponse struct {
	Holidays []HolidayDTO `json:"holidays"`
}

// FieldErrorDTO is one rejected request field.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every non-2xx status.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details string          `json:"details,omitempty"`
	Fields  []FieldErrorDTO `json:"fields,omitempty"`
}

func toResignationDTO(r resignation.Record) ResignationDTO {
	return ResignationDTO{
		ID:                     strconv.FormatInt(r.ID, 10),
		RetirementDate:         r.RetirementDate.String(),
		RemainingPaidLeaveDays: r.RemainingPaidLeaveDays,
		CreatedAt:              r.CreatedAt.Format(resignation.TimestampLayout),
	}
}

func toHolidayDTOs(h calendar.Holidays) []HolidayDTO {
	sorted := h.Sorted()
	dtos := make([]HolidayDTO, 0, len(sorted))
	for _, hol := range sorted {
		dtos = append(dtos, HolidayDTO{Date: hol.Date.String(), Name: hol.Name})
	}
	return dtos
}
