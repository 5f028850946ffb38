package service

import (
	"context"
	"errors"

	"team-calendar-service/internal/identity"
	"team-calendar-service/internal/model"
	"team-calendar-service/internal/policy"
	"team-calendar-service/internal/repository"

	"github.com/google/uuid"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (model.User, error)
	CreateUser(ctx context.Context, u model.User, passwordHash string) (model.User, error)
	SetIsActive(ctx context.Context, userID string, isActive bool) (model.User, error)
	SetRoleAndTeam(ctx context.Context, userID string, role model.Role, teamName string) (model.User, error)
}

// UserService содержит бизнес-логику, связанную с пользователями:
// локальную регистрацию и административное управление ролями и активностью.
type UserService struct {
	users UserRepository
}

// NewUserService создаёт новый сервис для операций над пользователями.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Register создаёт локальную учётную запись с ролью USER в указанной команде.
// Пароль сохраняется только в виде bcrypt-хэша.
func (s *UserService) Register(ctx context.Context, username, password, teamName string) (model.User, error) {
	if username == "" {
		return model.User{}, ErrValidation("username", "is required")
	}
	if len(password) < 8 {
		return model.User{}, ErrValidation("password", "must be at least 8 characters")
	}
	if teamName == "" {
		return model.User{}, ErrValidation("team_name", "is required")
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to hash password",
			Status:  500,
			Err:     err,
		}
	}

	user, err := s.users.CreateUser(ctx, model.User{
		UserID:   uuid.NewString(),
		Username: username,
		Role:     model.RoleUser,
		TeamName: teamName,
		IsActive: true,
	}, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return model.User{}, ErrDomain("USER_EXISTS", "username already taken")
		}
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.User{}, ErrNotFound("team not found")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.User{}, ErrStoreUnavailable(err)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to create user",
			Status:  500,
			Err:     err,
		}
	}
	return user, nil
}

// SetIsActive обновляет признак активности пользователя. Доступно только администратору.
func (s *UserService) SetIsActive(ctx context.Context, actorID, userID string, isActive bool) (model.User, error) {
	if userID == "" {
		return model.User{}, ErrValidation("user_id", "is required")
	}

	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.User{}, err
	}
	if d := policy.CanManageUsers(actor); !d.Allowed {
		return model.User{}, ErrAccessDenied(d.Reason)
	}

	user, err := s.users.SetIsActive(ctx, userID, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.User{}, ErrStoreUnavailable(err)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to update user",
			Status:  500,
			Err:     err,
		}
	}
	return user, nil
}

// SetRoleAndTeam переводит пользователя в другую роль и команду.
// Доступно только администратору — роль и команда неизменяемы для всех остальных.
func (s *UserService) SetRoleAndTeam(ctx context.Context, actorID, userID string, role model.Role, teamName string) (model.User, error) {
	if userID == "" {
		return model.User{}, ErrValidation("user_id", "is required")
	}
	if !role.Valid() {
		return model.User{}, ErrValidation("role", "must be USER, MANAGER or ADMIN")
	}
	if teamName == "" {
		return model.User{}, ErrValidation("team_name", "is required")
	}

	actor, err := resolveActor(ctx, s.users, actorID)
	if err != nil {
		return model.User{}, err
	}
	if d := policy.CanManageUsers(actor); !d.Allowed {
		return model.User{}, ErrAccessDenied(d.Reason)
	}

	user, err := s.users.SetRoleAndTeam(ctx, userID, role, teamName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.User{}, ErrNotFound("team not found")
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.User{}, ErrStoreUnavailable(err)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to update user",
			Status:  500,
			Err:     err,
		}
	}
	return user, nil
}
