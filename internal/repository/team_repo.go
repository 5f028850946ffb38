package repository

import (
	"context"
	"errors"

	"team-calendar-service/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo реализует репозиторий команд на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo c переданным подключением к PostgreSQL.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// CreateTeamWithMembers создаёт команду и привязывает к ней перечисленных участников.
// Участники без пароля создаются с пустым хэшем (учётные данные назначаются
// отдельно, например при LDAP-синхронизации). При конфликте по team_name
// возвращает ErrTeamExists. Вызывается внутри транзакции менеджера.
func (r *TeamRepo) CreateTeamWithMembers(ctx context.Context, t model.Team) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var teamID int64
	err := q.QueryRow(ctx, `INSERT INTO teams (team_name) VALUES ($1) RETURNING id`, t.TeamName).Scan(&teamID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальное ограничение по team_name нарушено
			return model.Team{}, ErrTeamExists
		}
		return model.Team{}, storeErr("insert team", err)
	}

	for _, m := range t.Members {
		role := m.Role
		if role == "" {
			role = model.RoleUser
		}
		_, err = q.Exec(ctx, `
INSERT INTO users (user_id, username, password_hash, role, team_id, is_active)
VALUES ($1, $2, '', $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET username = EXCLUDED.username,
    role     = EXCLUDED.role,
    team_id  = EXCLUDED.team_id,
    is_active = EXCLUDED.is_active
`, m.UserID, m.Username, string(role), teamID, m.IsActive)
		if err != nil {
			return model.Team{}, storeErr("upsert user "+m.UserID, err)
		}
	}

	return t, nil
}

// GetTeamByName возвращает команду по имени вместе с её участниками.
// Если команда не найдена, возвращает ErrTeamNotFound.
func (r *TeamRepo) GetTeamByName(ctx context.Context, name string) (model.Team, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.team_name, u.user_id, u.username, u.role, u.is_active
FROM teams t
LEFT JOIN users u ON u.team_id = t.id
WHERE t.team_name = $1
ORDER BY u.user_id
`, name)
	if err != nil {
		return model.Team{}, storeErr("query team", err)
	}
	defer rows.Close()

	team := model.Team{
		TeamName: name,
		Members:  make([]model.TeamMember, 0),
	}

	foundTeam := false

	for rows.Next() {
		foundTeam = true

		var teamName string
		var userID *string
		var username *string
		var role *string
		var isActive *bool

		if err := rows.Scan(&teamName, &userID, &username, &role, &isActive); err != nil {
			return model.Team{}, storeErr("scan row", err)
		}

		team.TeamName = teamName

		if userID != nil && username != nil && role != nil && isActive != nil {
			team.Members = append(team.Members, model.TeamMember{
				UserID:   *userID,
				Username: *username,
				Role:     model.Role(*role),
				IsActive: *isActive,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return model.Team{}, storeErr("rows error", err)
	}

	if !foundTeam {
		return model.Team{}, ErrTeamNotFound
	}

	return team, nil
}
