/*
handlers.go - HTTP API handlers for the rental engine

PURPOSE:
  Exposes checkout and the read-only catalog over HTTP. Handles request
  decoding and JSON responses, and delegates all pricing to rental.Checkout.

ENDPOINTS:
  Checkout:
    POST   /api/checkout               Price a rental, returns the agreement

  Catalog:
    GET    /api/tools                  List tools
    GET    /api/tools/{code}           Get one tool
    GET    /api/categories             List tool categories

  Calendar:
    GET    /api/holidays?year=YYYY     Observed holidays (default: current year)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, missing or out-of-range fields, any checkout
         validation failure
  - 404: Unknown tool on GET /api/tools/{code}
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - metrics.go: Prometheus instrumentation of checkouts
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/warp/rental-engine/calendar"
	"github.com/warp/rental-engine/generic"
	"github.com/warp/rental-engine/rental"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	validate *validator.Validate

	// today is the clock used for defaults such as the holiday year.
	today func() generic.TimePoint
}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		today:    generic.Today,
	}
}

// =============================================================================
// CHECKOUT
// =============================================================================

// Checkout prices a rental and returns the agreement.
// POST /api/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		checkoutsTotal.WithLabelValues(toolLabelUnknown, outcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		checkoutsTotal.WithLabelValues(toolLabel(req.ToolCode), outcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, "Invalid request fields", err)
		return
	}

	agreement, err := rental.CheckoutRequest(req.ToRental())
	observeCheckout(req.ToolCode, agreement, err)
	if err != nil {
		if rental.IsClientError(err) {
			writeError(w, http.StatusBadRequest, err.Error(), err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Checkout failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toAgreementDTO(uuid.NewString(), agreement))
}

// =============================================================================
// CATALOG
// =============================================================================

// ListTools returns the tool catalog.
// GET /api/tools
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	tools := rental.Tools()
	dtos := make([]ToolDTO, len(tools))
	for i, t := range tools {
		dtos[i] = toToolDTO(t)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTool returns a single catalog entry.
// GET /api/tools/{code}
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	tool, err := rental.LookupTool(code)
	if err != nil {
		if rental.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Tool not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get tool", err)
		return
	}

	writeJSON(w, http.StatusOK, toToolDTO(tool))
}

// ListCategories returns the tool categories.
// GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := rental.Categories()
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CALENDAR
// =============================================================================

// ListHolidays returns the observed holidays of a year.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := h.today().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			if err == nil {
				err = errors.New("year out of range")
			}
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = y
	}

	holidays := calendar.Holidays(year)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = toHolidayDTO(hol)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

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
