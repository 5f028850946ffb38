package http

import (
	"encoding/json"
	"net/http"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/service"
)

func (h *Handler) handleEventCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_create"

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateEventRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	input := model.Event{
		Title:    req.Title,
		Kind:     req.Kind,
		Scope:    req.Scope,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}

	ctx := r.Context()
	event, err := h.Events.CreateEvent(ctx, actorID(r), input)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := eventResponse{Event: event}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleEventDecide(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_decide"

	var req decideEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateDecideRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	event, err := h.Events.Decide(ctx, actorID(r), req.EventID, req.Decision == "approve", req.Note)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := eventResponse{Event: event}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleEventCancel(w http.ResponseWriter, r *http.Request) {
	const handlerName = "event_cancel"

	var req cancelEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateEventID(req.EventID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	event, err := h.Events.Cancel(ctx, actorID(r), req.EventID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := eventResponse{Event: event}
	_ = json.NewEncoder(w).Encode(resp)
}
