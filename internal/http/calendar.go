package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleCalendarGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "calendar_get"

	from, to, err := ParseCalendarRange(
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	events, err := h.Events.ListVisible(ctx, actorID(r), from, to)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	// Статус каждого события дополняется цветом отображения —
	// контракт слоя презентации
	resp := calendarResponse{Events: make([]calendarEventDTO, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, calendarEventDTO{
			Event: e,
			Color: e.Status.Color(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
