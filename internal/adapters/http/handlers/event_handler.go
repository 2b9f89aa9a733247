package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/chronod/internal/adapters/http/dto"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// EventHandler handles HTTP requests for the event registry and agenda view.
type EventHandler struct {
	service ports.EventService
}

// NewEventHandler creates a new EventHandler with the given service port.
func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents handles GET /api/v1/events. The optional owner query parameter
// restricts the listing to one owner's events.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")

	events, err := h.service.ListEvents(r.Context(), owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventListResponse(events))
}

// CreateEvent handles POST /api/v1/events.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ev, err := req.ToEvent()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.service.CreateEvent(r.Context(), ev)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEventResponse(created))
}

// GetEvent handles GET /api/v1/events/{id}.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ev, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventResponse(ev))
}

// DeleteEvent handles DELETE /api/v1/events/{id}.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Agenda handles GET /api/v1/agenda?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *EventHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r, "from")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	occs, err := h.service.Agenda(r.Context(), from, to)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAgendaResponse(occs))
}

// RefreshFeeds handles POST /api/v1/feeds/refresh. It forces an immediate
// re-fetch of all subscribed feeds instead of waiting for the next
// scheduled run.
func (h *EventHandler) RefreshFeeds(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshFeeds(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
