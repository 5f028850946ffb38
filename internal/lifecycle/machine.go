// Package lifecycle реализует конечный автомат утверждения событий:
// начальный статус по типу события, переходы из PENDING и финальные статусы.
package lifecycle

import (
	"fmt"
	"time"

	"team-calendar-service/internal/model"
)

// InvalidTransitionError возвращается при попытке перехода из статуса,
// в котором он не определён (включая проигранные гонки утверждения).
type InvalidTransitionError struct {
	From      model.EventStatus
	Attempted string
}

// Error реализует интерфейс error.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s event in status %s", e.Attempted, e.From)
}

// InitialStatus возвращает статус, в котором рождается событие данного типа:
// встречи утверждаются автоматически, отпуска ждут решения.
func InitialStatus(kind model.EventKind) model.EventStatus {
	if kind == model.KindMeeting {
		return model.StatusApproved
	}
	return model.StatusPending
}

// IsTerminal сообщает, финален ли статус: из APPROVED, REJECTED и CANCELLED
// переходы не определены.
func IsTerminal(status model.EventStatus) bool {
	return status != model.StatusPending
}

// Approve выполняет переход PENDING -> APPROVED, фиксируя утверждающего и время решения.
func Approve(event model.Event, approver model.User, now time.Time) (model.Event, error) {
	return transition(event, model.StatusApproved, "approve", approver, now, "")
}

// Reject выполняет переход PENDING -> REJECTED, фиксируя утверждающего,
// время решения и необязательный комментарий.
func Reject(event model.Event, approver model.User, now time.Time, note string) (model.Event, error) {
	return transition(event, model.StatusRejected, "reject", approver, now, note)
}

// Cancel выполняет переход PENDING -> CANCELLED: владелец отзывает заявку до решения.
// Утверждающий не фиксируется — отзыв не является решением.
func Cancel(event model.Event, now time.Time) (model.Event, error) {
	if event.Status != model.StatusPending {
		return model.Event{}, &InvalidTransitionError{From: event.Status, Attempted: "cancel"}
	}
	event.Status = model.StatusCancelled
	event.DecidedAt = &now
	return event, nil
}

// transition применяет решение к заявке в статусе PENDING.
// Инвариант: утверждающий имеет роль менеджера или администратора и не
// является владельцем — это гарантирует движок авторизации, здесь же
// нарушение считается ошибкой программирования и возвращается как отказ.
func transition(event model.Event, to model.EventStatus, attempted string, approver model.User, now time.Time, note string) (model.Event, error) {
	if event.Status != model.StatusPending {
		return model.Event{}, &InvalidTransitionError{From: event.Status, Attempted: attempted}
	}
	if !approver.Role.IsElevated() || approver.UserID == event.OwnerID {
		return model.Event{}, &InvalidTransitionError{From: event.Status, Attempted: attempted}
	}
	approverID := approver.UserID
	event.Status = to
	event.ApproverID = &approverID
	event.DecidedAt = &now
	event.DecisionNote = note
	return event, nil
}
