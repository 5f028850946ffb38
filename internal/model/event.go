// Package model содержит доменные структуры для пользователей, команд и событий календаря.
package model

import "time"

// EventKind представляет тип события календаря.
type EventKind string

const (
	// KindMeeting — встреча: создаётся сразу утверждённой.
	KindMeeting EventKind = "MEETING"
	// KindVacation — отпуск: требует утверждения менеджером или администратором.
	KindVacation EventKind = "VACATION"
)

// Valid проверяет, что тип события принадлежит закрытому перечислению.
func (k EventKind) Valid() bool {
	return k == KindMeeting || k == KindVacation
}

// EventScope представляет область видимости события.
type EventScope string

const (
	// ScopeSelf — событие видно только владельцу.
	ScopeSelf EventScope = "SELF"
	// ScopeTeam — событие транслируется в календари всех участников команды владельца.
	ScopeTeam EventScope = "TEAM"
)

// Valid проверяет, что область видимости принадлежит закрытому перечислению.
func (s EventScope) Valid() bool {
	return s == ScopeSelf || s == ScopeTeam
}

// EventStatus представляет статус события в жизненном цикле утверждения.
type EventStatus string

const (
	// StatusPending означает, что заявка ожидает решения менеджера или администратора.
	StatusPending EventStatus = "PENDING"
	// StatusApproved означает, что событие утверждено (встречи рождаются в этом статусе).
	StatusApproved EventStatus = "APPROVED"
	// StatusRejected означает, что заявка отклонена.
	StatusRejected EventStatus = "REJECTED"
	// StatusCancelled означает, что владелец отозвал заявку до решения.
	StatusCancelled EventStatus = "CANCELLED"
)

// Valid проверяет, что статус принадлежит закрытому перечислению.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Color возвращает цвет отображения статуса для слоя презентации.
// Контракт: APPROVED — зелёный, PENDING — жёлтый, REJECTED — красный,
// CANCELLED — нейтральный серый.
func (s EventStatus) Color() string {
	switch s {
	case StatusApproved:
		return "#10b981"
	case StatusPending:
		return "#facc15"
	case StatusRejected:
		return "#ef4444"
	case StatusCancelled:
		return "#9ca3af"
	}
	return ""
}

// Event описывает полный объект события с владельцем, статусом, решением и временными метками.
// TeamName — команда владельца на момент создания; Version увеличивается при каждой записи
// и участвует в compare-and-set при смене статуса.
type Event struct {
	EventID      string      `json:"event_id"`
	Title        string      `json:"title"`
	Kind         EventKind   `json:"kind"`
	OwnerID      string      `json:"owner_id"`
	TeamName     string      `json:"team_name"`
	Scope        EventScope  `json:"scope"`
	StartsAt     time.Time   `json:"starts_at"`
	EndsAt       time.Time   `json:"ends_at"`
	Status       EventStatus `json:"status"`
	ApproverID   *string     `json:"approver_id,omitempty"`
	DecidedAt    *time.Time  `json:"decided_at,omitempty"`
	DecisionNote string      `json:"decision_note,omitempty"`
	CreatedAt    *time.Time  `json:"created_at,omitempty"`
	Version      int64       `json:"version"`
}
