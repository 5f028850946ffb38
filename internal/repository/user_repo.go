package repository

import (
	"context"
	"errors"

	"team-calendar-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// GetByUserID возвращает пользователя по user_id вместе с именем его команды.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByUserID(ctx context.Context, userID string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT u.user_id, u.username, u.role, t.team_name, u.is_active
FROM users u
JOIN teams t ON u.team_id = t.id
WHERE u.user_id = $1
`, userID)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Role, &u.TeamName, &u.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, storeErr("get user", err)
	}
	return u, nil
}

// GetCredentials возвращает пользователя по username вместе с хэшем его пароля.
// Используется локальным провайдером идентификации для проверки учётных данных.
func (r *UserRepo) GetCredentials(ctx context.Context, username string) (model.User, string, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT u.user_id, u.username, u.role, t.team_name, u.is_active, u.password_hash
FROM users u
JOIN teams t ON u.team_id = t.id
WHERE u.username = $1
`, username)

	var u model.User
	var hash string
	if err := row.Scan(&u.UserID, &u.Username, &u.Role, &u.TeamName, &u.IsActive, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", ErrUserNotFound
		}
		return model.User{}, "", storeErr("get credentials", err)
	}
	return u, hash, nil
}

// CreateUser создаёт пользователя в команде teamName с указанным хэшем пароля.
// При конфликте по user_id или username возвращает ErrUserExists,
// при отсутствии команды — ErrTeamNotFound.
func (r *UserRepo) CreateUser(ctx context.Context, u model.User, passwordHash string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	var teamID int64
	if err := q.QueryRow(ctx, `SELECT id FROM teams WHERE team_name = $1`, u.TeamName).Scan(&teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrTeamNotFound
		}
		return model.User{}, storeErr("get team id", err)
	}

	row := q.QueryRow(ctx, `
INSERT INTO users (user_id, username, password_hash, role, team_id, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)
RETURNING user_id, username, role, is_active
`, u.UserID, u.Username, passwordHash, string(u.Role), teamID)

	var created model.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Role, &created.IsActive); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, ErrUserExists
		}
		return model.User{}, storeErr("insert user", err)
	}
	created.TeamName = u.TeamName
	return created, nil
}

// SetIsActive обновляет флаг активности пользователя и возвращает обновлённого пользователя
// вместе с именем его команды. Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) SetIsActive(ctx context.Context, userID string, isActive bool) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE users u
SET is_active = $2
FROM teams t
WHERE u.user_id = $1 AND u.team_id = t.id
RETURNING u.user_id, u.username, u.role, t.team_name, u.is_active
`, userID, isActive)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Role, &u.TeamName, &u.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, storeErr("update user", err)
	}
	return u, nil
}

// SetRoleAndTeam переводит пользователя в указанную роль и команду.
// Если команда не найдена, возвращает ErrTeamNotFound;
// если пользователь не найден — ErrUserNotFound.
func (r *UserRepo) SetRoleAndTeam(ctx context.Context, userID string, role model.Role, teamName string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	var teamID int64
	if err := q.QueryRow(ctx, `SELECT id FROM teams WHERE team_name = $1`, teamName).Scan(&teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrTeamNotFound
		}
		return model.User{}, storeErr("get team id", err)
	}

	row := q.QueryRow(ctx, `
UPDATE users
SET role = $2, team_id = $3
WHERE user_id = $1
RETURNING user_id, username, role, is_active
`, userID, string(role), teamID)

	var u model.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Role, &u.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, storeErr("update user role", err)
	}
	u.TeamName = teamName
	return u, nil
}
