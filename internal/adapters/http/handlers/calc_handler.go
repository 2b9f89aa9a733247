package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/chronod/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// CalcHandler handles HTTP requests for the date, time and unit calculators.
type CalcHandler struct {
	service ports.CalculatorService
}

// NewCalcHandler creates a new CalcHandler with the given service port.
func NewCalcHandler(service ports.CalculatorService) *CalcHandler {
	return &CalcHandler{service: service}
}

// DateDiff handles POST /api/v1/calc/date/diff.
func (h *CalcHandler) DateDiff(w http.ResponseWriter, r *http.Request) {
	var req dto.DateDiffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	diff, err := h.service.DateDiff(r.Context(), req.Start, req.End)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDateDiffResponse(diff))
}

// DateAdd handles POST /api/v1/calc/date/add.
func (h *CalcHandler) DateAdd(w http.ResponseWriter, r *http.Request) {
	var req dto.DateAddRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.DateAdd(r.Context(), req.Date, req.Amount, date.Unit(req.Unit))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DateAddResponse{Date: result})
}

// TimeGap handles POST /api/v1/calc/time/gap.
func (h *CalcHandler) TimeGap(w http.ResponseWriter, r *http.Request) {
	var req dto.TimeGapRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	seconds, err := h.service.TimeGap(r.Context(), req.Start, req.End)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TimeGapResponse{Seconds: seconds})
}

// TimeAdd handles POST /api/v1/calc/time/add.
func (h *CalcHandler) TimeAdd(w http.ResponseWriter, r *http.Request) {
	var req dto.TimeAddRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.TimeAdd(r.Context(), req.Time, req.Amount, clock.Unit(req.Unit))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TimeAddResponse{Time: result})
}

// Convert handles POST /api/v1/calc/convert.
func (h *CalcHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amount, err := h.service.Convert(r.Context(), req.Amount, unit.Unit(req.From), unit.Unit(req.To))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ConvertResponse{Amount: amount, Unit: req.To})
}
