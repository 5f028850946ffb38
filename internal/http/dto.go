// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"team-calendar-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TeamName string `json:"team_name"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type createTeamResponse struct {
	Team model.Team `json:"team"`
}

type setIsActiveRequest struct {
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
}

type setRoleAndTeamRequest struct {
	UserID   string     `json:"user_id"`
	Role     model.Role `json:"role"`
	TeamName string     `json:"team_name"`
}

type createEventRequest struct {
	Title    string           `json:"title"`
	Kind     model.EventKind  `json:"kind"`
	Scope    model.EventScope `json:"scope"`
	StartsAt time.Time        `json:"starts_at"`
	EndsAt   time.Time        `json:"ends_at"`
}

type decideEventRequest struct {
	EventID  string `json:"event_id"`
	Decision string `json:"decision"`
	Note     string `json:"note,omitempty"`
}

type cancelEventRequest struct {
	EventID string `json:"event_id"`
}

type eventResponse struct {
	Event model.Event `json:"event"`
}

// calendarEventDTO дополняет событие цветом отображения для слоя презентации.
type calendarEventDTO struct {
	model.Event
	Color string `json:"color"`
}

type calendarResponse struct {
	Events []calendarEventDTO `json:"events"`
}
