package service

import (
	"context"
	"errors"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/policy"
	"team-calendar-service/internal/repository"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	CreateTeamWithMembers(ctx context.Context, team model.Team) (model.Team, error)
	GetTeamByName(ctx context.Context, name string) (model.Team, error)
}

// TeamService содержит бизнес-логику по созданию и получению команд.
type TeamService struct {
	teams     TeamRepository
	users     UserRepository
	txManager TransactionManager
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(teams TeamRepository, users UserRepository, txManager TransactionManager) *TeamService {
	return &TeamService{
		teams:     teams,
		users:     users,
		txManager: txManager,
	}
}

// CreateTeam валидирует входные данные и создаёт команду с участниками.
// Доступно только администратору. Команда и участники записываются атомарно:
// в случае конфликтов по имени команды возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) CreateTeam(ctx context.Context, actorID string, t model.Team) (model.Team, error) {
	// 1. Валидация входных данных
	if t.TeamName == "" {
		return model.Team{}, ErrValidation("team_name", "is required")
	}
	if len(t.Members) == 0 {
		return model.Team{}, ErrValidation("members", "must not be empty")
	}

	// 2. Авторизация
	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.Team{}, err
	}
	if d := policy.CanManageUsers(actor); !d.Allowed {
		return model.Team{}, ErrAccessDenied(d.Reason)
	}

	// 3. Сохранение в транзакции: команда и участники либо записываются
	// вместе, либо не записываются вовсе
	var team model.Team
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		team, errTx = s.teams.CreateTeamWithMembers(ctx, t)
		return errTx
	})
	if err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return model.Team{}, ErrDomain("TEAM_EXISTS", "team_name already exists")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.Team{}, ErrStoreUnavailable(err)
		}
		return model.Team{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to create team",
			Status:  500,
			Err:     err,
		}
	}
	return team, nil
}

// GetTeam возвращает команду по имени вместе с её участниками.
// Своя команда доступна любому её участнику, чужие — менеджерам и администраторам.
func (s *TeamService) GetTeam(ctx context.Context, actorID, name string) (model.Team, error) {
	if name == "" {
		return model.Team{}, ErrValidation("team_name", "is required")
	}

	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.Team{}, err
	}
	if d := policy.CanViewCalendar(actor, name); !d.Allowed {
		return model.Team{}, ErrAccessDenied(d.Reason)
	}

	team, err := s.teams.GetTeamByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.Team{}, ErrStoreUnavailable(err)
		}
		return model.Team{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to get team",
			Status:  500,
			Err:     err,
		}
	}
	return team, nil
}
