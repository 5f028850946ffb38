// Package service содержит бизнес-логику календаря: создание событий,
// утверждение заявок, отзыв и выборку видимых событий.
package service

import (
	"context"
	"errors"
	"time"

	"team-calendar-service/internal/lifecycle"
	"team-calendar-service/internal/model"
	"team-calendar-service/internal/policy"
	"team-calendar-service/internal/repository"

	"github.com/google/uuid"
)

const (
	// storeRetryAttempts — максимум попыток при транзиентном сбое хранилища.
	storeRetryAttempts = 3
	// storeRetryDelay — базовая задержка между попытками.
	storeRetryDelay = 50 * time.Millisecond

	maxTitleLen = 100
)

// EventRepository описывает контракт репозитория для работы с событиями календаря.
type EventRepository interface {
	CreateEvent(ctx context.Context, e model.Event) (model.Event, error)
	GetEvent(ctx context.Context, eventID string) (model.Event, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]model.Event, error)
	UpdateStatusCAS(ctx context.Context, e model.Event, expectedStatus model.EventStatus, expectedVersion int64) (model.Event, error)
}

// SchedulingService — фасад планирования: оркестрирует движок авторизации,
// конечный автомат утверждения и репозиторий событий.
type SchedulingService struct {
	events EventRepository
	users  UserRepository
}

// NewSchedulingService создаёт новый фасад планирования.
func NewSchedulingService(events EventRepository, users UserRepository) *SchedulingService {
	return &SchedulingService{
		events: events,
		users:  users,
	}
}

// CreateEvent создаёт событие от имени актора: встречи рождаются утверждёнными,
// отпуска — ожидающими решения. Пересечения по времени с другими событиями
// владельца допустимы — это не система бронирования.
func (s *SchedulingService) CreateEvent(ctx context.Context, actorID string, input model.Event) (model.Event, error) {
	// 1. Валидация входных данных
	if input.Title == "" {
		return model.Event{}, ErrValidation("title", "is required")
	}
	if len(input.Title) > maxTitleLen {
		return model.Event{}, ErrValidation("title", "must be at most 100 characters")
	}
	if !input.Kind.Valid() {
		return model.Event{}, ErrValidation("kind", "must be MEETING or VACATION")
	}
	if !input.Scope.Valid() {
		return model.Event{}, ErrValidation("scope", "must be SELF or TEAM")
	}
	if input.StartsAt.IsZero() {
		return model.Event{}, ErrValidation("starts_at", "is required")
	}
	if input.EndsAt.IsZero() {
		return model.Event{}, ErrValidation("ends_at", "is required")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return model.Event{}, ErrValidation("ends_at", "must be after starts_at")
	}

	// 2. Разрешение актора
	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.Event{}, err
	}

	// 3. Авторизация
	if d := policy.CanCreateEvent(actor, input.Kind, input.Scope); !d.Allowed {
		return model.Event{}, ErrAccessDenied(d.Reason)
	}

	// 4. Начальный статус по типу события
	input.EventID = uuid.NewString()
	input.OwnerID = actor.UserID
	input.TeamName = actor.TeamName
	input.Status = lifecycle.InitialStatus(input.Kind)
	input.ApproverID = nil
	input.DecidedAt = nil
	input.DecisionNote = ""

	// 5. Сохранение
	var created model.Event
	err = s.withStoreRetry(ctx, func() error {
		var errStore error
		created, errStore = s.events.CreateEvent(ctx, input)
		return errStore
	})
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.Event{}, ErrStoreUnavailable(err)
		}
		return model.Event{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to create event",
			Status:  500,
			Err:     err,
		}
	}

	return created, nil
}

// Decide применяет решение менеджера или администратора к заявке:
// approve=true утверждает, approve=false отклоняет (с необязательным
// комментарием). Переход выполняется по схеме compare-and-set: если
// параллельное решение успело раньше, возвращается INVALID_TRANSITION.
func (s *SchedulingService) Decide(ctx context.Context, actorID, eventID string, approve bool, note string) (model.Event, error) {
	attempted := "reject"
	if approve {
		attempted = "approve"
	}

	// 1. Валидация входных данных
	if eventID == "" {
		return model.Event{}, ErrValidation("event_id", "is required")
	}

	// 2. Разрешение актора
	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.Event{}, err
	}

	// 3. Загрузка события
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	// 4. Авторизация: нефинальный статус — ошибка перехода, не доступа
	if d := policy.CanDecide(actor, event); !d.Allowed {
		if d.Reason == policy.ReasonNotPending {
			return model.Event{}, ErrInvalidTransition(event.Status, attempted)
		}
		return model.Event{}, ErrAccessDenied(d.Reason)
	}

	// 5. Переход конечного автомата
	now := time.Now().UTC()
	var next model.Event
	if approve {
		next, err = lifecycle.Approve(event, actor, now)
	} else {
		next, err = lifecycle.Reject(event, actor, now, note)
	}
	if err != nil {
		var invalid *lifecycle.InvalidTransitionError
		if errors.As(err, &invalid) {
			return model.Event{}, ErrInvalidTransition(invalid.From, invalid.Attempted)
		}
		return model.Event{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to apply transition",
			Status:  500,
			Err:     err,
		}
	}

	// 6. Compare-and-set в хранилище
	return s.commitTransition(ctx, next, event.Version, attempted)
}

// Cancel отзывает заявку: доступно только владельцу и только до решения.
func (s *SchedulingService) Cancel(ctx context.Context, actorID, eventID string) (model.Event, error) {
	if eventID == "" {
		return model.Event{}, ErrValidation("event_id", "is required")
	}

	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.Event{}, err
	}

	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	if d := policy.CanCancel(actor, event); !d.Allowed {
		if d.Reason == policy.ReasonNotPending {
			return model.Event{}, ErrInvalidTransition(event.Status, "cancel")
		}
		return model.Event{}, ErrAccessDenied(d.Reason)
	}

	next, err := lifecycle.Cancel(event, time.Now().UTC())
	if err != nil {
		var invalid *lifecycle.InvalidTransitionError
		if errors.As(err, &invalid) {
			return model.Event{}, ErrInvalidTransition(invalid.From, invalid.Attempted)
		}
		return model.Event{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to apply transition",
			Status:  500,
			Err:     err,
		}
	}

	return s.commitTransition(ctx, next, event.Version, "cancel")
}

// ListVisible возвращает события в интервале [from, to), видимые актору.
// Один проход по выборке за вызов, без курсора между вызовами; выборка
// не транзакционна с записями — только что утверждённое событие может
// появиться со следующего вызова.
func (s *SchedulingService) ListVisible(ctx context.Context, actorID string, from, to time.Time) ([]model.Event, error) {
	if from.IsZero() {
		return nil, ErrValidation("from", "is required")
	}
	if to.IsZero() {
		return nil, ErrValidation("to", "is required")
	}
	if !to.After(from) {
		return nil, ErrValidation("to", "must be after from")
	}

	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return nil, err
	}

	var all []model.Event
	err = s.withStoreRetry(ctx, func() error {
		var errStore error
		all, errStore = s.events.ListInRange(ctx, from, to)
		return errStore
	})
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, ErrStoreUnavailable(err)
		}
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list events",
			Status:  500,
			Err:     err,
		}
	}

	visible := make([]model.Event, 0, len(all))
	for _, e := range all {
		if policy.CanViewEvent(actor, e).Allowed {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// loadEvent загружает событие с повтором транзиентных сбоев.
func (s *SchedulingService) loadEvent(ctx context.Context, eventID string) (model.Event, error) {
	var event model.Event
	err := s.withStoreRetry(ctx, func() error {
		var errStore error
		event, errStore = s.events.GetEvent(ctx, eventID)
		return errStore
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.Event{}, ErrNotFound("event not found")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.Event{}, ErrStoreUnavailable(err)
		}
		return model.Event{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to get event",
			Status:  500,
			Err:     err,
		}
	}
	return event, nil
}

// commitTransition записывает переход compare-and-set'ом. Проигранная гонка
// (конфликт версии) возвращается как INVALID_TRANSITION с актуальным статусом,
// чтобы вызывающий мог перечитать событие.
func (s *SchedulingService) commitTransition(ctx context.Context, next model.Event, expectedVersion int64, attempted string) (model.Event, error) {
	var updated model.Event
	err := s.withStoreRetry(ctx, func() error {
		var errStore error
		updated, errStore = s.events.UpdateStatusCAS(ctx, next, model.StatusPending, expectedVersion)
		return errStore
	})
	if err == nil {
		return updated, nil
	}

	if errors.Is(err, repository.ErrVersionConflict) {
		from := model.StatusPending
		if current, getErr := s.events.GetEvent(ctx, next.EventID); getErr == nil {
			from = current.Status
		}
		return model.Event{}, ErrInvalidTransition(from, attempted)
	}
	if errors.Is(err, repository.ErrEventNotFound) {
		return model.Event{}, ErrNotFound("event not found")
	}
	if errors.Is(err, repository.ErrStoreUnavailable) {
		return model.Event{}, ErrStoreUnavailable(err)
	}
	return model.Event{}, &AppError{
		Code:    "INTERNAL",
		Message: "failed to update event",
		Status:  500,
		Err:     err,
	}
}

// withStoreRetry повторяет fn при ErrStoreUnavailable: не более
// storeRetryAttempts попыток с нарастающей задержкой. Любая другая ошибка
// возвращается сразу.
func (s *SchedulingService) withStoreRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < storeRetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(storeRetryDelay << attempt):
			}
		}
		if err = fn(); err == nil || !errors.Is(err, repository.ErrStoreUnavailable) {
			return err
		}
	}
	return err
}
