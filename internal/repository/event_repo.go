package repository

import (
	"context"
	"errors"
	"time"

	"team-calendar-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// eventColumns — общий список колонок события для SELECT/RETURNING.
const eventColumns = `event_id, title, kind, owner_id, team_name, scope, starts_at, ends_at, status, approver_id, decided_at, decision_note, created_at, version`

// EventRepo реализует репозиторий событий календаря на базе PostgreSQL.
type EventRepo struct {
	db *Postgres
}

// NewEventRepo создаёт новый экземпляр EventRepo c переданным подключением к PostgreSQL.
func NewEventRepo(db *Postgres) *EventRepo {
	return &EventRepo{db: db}
}

// CreateEvent сохраняет новое событие. При конфликте по event_id возвращает ErrEventExists.
func (r *EventRepo) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO events (event_id, title, kind, owner_id, team_name, scope, starts_at, ends_at, status, decision_note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+eventColumns+`
`, e.EventID, e.Title, string(e.Kind), e.OwnerID, e.TeamName, string(e.Scope), e.StartsAt, e.EndsAt, string(e.Status), e.DecisionNote)

	created, err := scanEvent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Event{}, ErrEventExists
		}
		return model.Event{}, storeErr("insert event", err)
	}
	return created, nil
}

// GetEvent возвращает событие по идентификатору.
// Если событие не найдено, возвращает ErrEventNotFound.
func (r *EventRepo) GetEvent(ctx context.Context, eventID string) (model.Event, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT `+eventColumns+`
FROM events
WHERE event_id = $1
`, eventID)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, storeErr("get event", err)
	}
	return e, nil
}

// ListInRange возвращает события, пересекающиеся с интервалом [from, to),
// отсортированные по началу. Фильтрация видимости выполняется выше, в фасаде.
func (r *EventRepo) ListInRange(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+eventColumns+`
FROM events
WHERE starts_at < $2 AND ends_at > $1
ORDER BY starts_at, event_id
`, from, to)
	if err != nil {
		return nil, storeErr("query events", err)
	}
	defer rows.Close()

	res := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storeErr("scan event", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("rows error", err)
	}
	return res, nil
}

// UpdateStatusCAS записывает новый статус события по схеме compare-and-set:
// строка обновляется только если статус и версия не изменились с момента
// чтения. Если CAS не прошёл, возвращает ErrVersionConflict (или
// ErrEventNotFound, если событие исчезло); молчаливой перезаписи не бывает.
func (r *EventRepo) UpdateStatusCAS(ctx context.Context, e model.Event, expectedStatus model.EventStatus, expectedVersion int64) (model.Event, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
UPDATE events
SET status = $2,
    approver_id = $3,
    decided_at = $4,
    decision_note = $5,
    version = version + 1
WHERE event_id = $1 AND status = $6 AND version = $7
RETURNING `+eventColumns+`
`, e.EventID, string(e.Status), e.ApproverID, e.DecidedAt, e.DecisionNote, string(expectedStatus), expectedVersion)

	updated, err := scanEvent(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Event{}, storeErr("update event", err)
	}

	// CAS не прошёл: различаем исчезнувшее событие и проигранную гонку.
	if _, getErr := r.GetEvent(ctx, e.EventID); getErr != nil {
		if errors.Is(getErr, ErrEventNotFound) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, getErr
	}
	return model.Event{}, ErrVersionConflict
}

// scanEvent читает строку события в доменную структуру.
func scanEvent(row pgx.Row) (model.Event, error) {
	var e model.Event
	var kind, scope, status string
	var createdAt time.Time

	err := row.Scan(
		&e.EventID, &e.Title, &kind, &e.OwnerID, &e.TeamName, &scope,
		&e.StartsAt, &e.EndsAt, &status, &e.ApproverID, &e.DecidedAt,
		&e.DecisionNote, &createdAt, &e.Version,
	)
	if err != nil {
		return model.Event{}, err
	}

	e.Kind = model.EventKind(kind)
	e.Scope = model.EventScope(scope)
	e.Status = model.EventStatus(status)
	e.CreatedAt = &createdAt
	return e, nil
}
