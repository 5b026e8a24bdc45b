/*
handlers.go - HTTP API handlers for the leave planner

ENDPOINTS:
  Resignations:
    GET    /api/resignations/latest  Most recently created record
    POST   /api/resignations         Create a record

  Vacation:
    GET    /api/vacation-start-date  First day of paid leave for the latest record
    GET    /api/overview             Latest record and its start date in one call

  Holidays:
    GET    /api/holidays             Current holiday calendar

  Health:
    GET    /healthz

REQUEST FLOW:
  1. Parse HTTP request
  2. Call resignation.Service / vacation.Planner / holidays.Provider
  3. Serialize response
  4. Map domain errors to HTTP status

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, validation errors
  - 404: No resignation recorded
  - 422: No paid leave remaining
  - 502: Holiday calendar could not be fetched
  - 500: Internal errors (including date range overflow)

SECURITY NOTE:
  No authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/holidays"
	"github.com/warp/leave-planner/resignation"
	"github.com/warp/leave-planner/vacation"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Resignations *resignation.Service
	Planner      *vacation.Planner
	Holidays     holidays.Provider
	Logger       *slog.Logger
}

// NewHandler creates a new handler.
func NewHandler(svc *resignation.Service, planner *vacation.Planner, provider holidays.Provider) *Handler {
	return &Handler{
		Resignations: svc,
		Planner:      planner,
		Holidays:     provider,
		Logger:       slog.Default(),
	}
}

// =============================================================================
// RESIGNATION HANDLERS
// =============================================================================

// GetLatestResignation returns the most recently created record.
// GET /api/resignations/latest
func (h *Handler) GetLatestResignation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Resignations.Latest(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResignationDTO(rec))
}

// CreateResignation stores a new record.
// POST /api/resignations
func (h *Handler) CreateResignation(w http.ResponseWriter, r *http.Request) {
	var req CreateResignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.Resignations.Create(r.Context(), resignation.Input{
		RetirementDate:         req.RetirementDate,
		RemainingPaidLeaveDays: req.RemainingPaidLeaveDays,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.Logger.Info("resignation_created",
		"id", rec.ID,
		"retirement_date", rec.RetirementDate.String(),
		"remaining_paid_leave_days", rec.RemainingPaidLeaveDays,
		"request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusCreated, toResignationDTO(rec))
}

// =============================================================================
// VACATION HANDLERS
// =============================================================================

// GetVacationStartDate resolves the start date for the latest record.
// GET /api/vacation-start-date
func (h *Handler) GetVacationStartDate(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Planner.Plan(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, VacationStartDateDTO{VacationStartDate: plan.StartDate.String()})
}

// GetOverview returns the latest record and its start date. A record whose
// start date cannot be resolved is still returned, with the reason in errors.
// GET /api/overview
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Planner.Plan(r.Context())
	if err != nil && !isResolutionError(err) {
		h.writeDomainError(w, r, err)
		return
	}

	resp := OverviewResponse{LatestResignation: toResignationDTO(plan.Resignation)}
	if err != nil {
		h.logError(r, "vacation_start_date_unresolved", err)
		resp.Errors = []string{err.Error()}
	} else {
		start := plan.StartDate.String()
		resp.VacationStartDate = &start
	}
	writeJSON(w, http.StatusOK, resp)
}

func isResolutionError(err error) bool {
	return errors.Is(err, vacation.ErrNoLeaveBalance) || errors.Is(err, calendar.ErrInvalidDate)
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the current holiday calendar.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	cal, err := h.Holidays.Fetch(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, HolidaysResponse{Holidays: toHolidayDTOs(cal)})
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *resignation.ValidationError

	switch {
	case errors.As(err, &verr):
		resp := ErrorResponse{Error: "Invalid resignation", Details: verr.Error()}
		for _, f := range verr.Fields {
			resp.Fields = append(resp.Fields, FieldErrorDTO{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, resignation.ErrNotFound):
		writeError(w, http.StatusNotFound, "No resignation recorded", err)
	case errors.Is(err, vacation.ErrNoLeaveBalance):
		writeError(w, http.StatusUnprocessableEntity, "No paid leave remaining", err)
	case errors.Is(err, holidays.ErrFetch):
		h.logError(r, "holiday_fetch_failed", err)
		writeError(w, http.StatusBadGateway, "Failed to fetch holidays", err)
	case errors.Is(err, calendar.ErrInvalidDate):
		h.logError(r, "vacation_start_date_out_of_range", err)
		writeError(w, http.StatusInternalServerError, "Vacation start date is out of range", err)
	default:
		h.logError(r, "request_failed", err)
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func (h *Handler) logError(r *http.Request, event string, err error) {
	h.Logger.Error(event,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
