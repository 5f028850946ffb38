package http

import (
	"encoding/json"
	"net/http"

	"team-calendar-service/internal/service"
)

func (h *Handler) handleUserSetIsActive(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_set_is_active"

	var req setIsActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSetIsActiveRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	user, err := h.Users.SetIsActive(ctx, actorID(r), req.UserID, req.IsActive)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := userResponse{User: user}
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) handleUserSetRoleAndTeam(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_set_role_and_team"

	var req setRoleAndTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateSetRoleAndTeamRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	ctx := r.Context()
	user, err := h.Users.SetRoleAndTeam(ctx, actorID(r), req.UserID, req.Role, req.TeamName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := userResponse{User: user}
	_ = json.NewEncoder(w).Encode(resp)
}
