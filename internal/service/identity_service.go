package service

import (
	"context"
	"errors"

	"team-calendar-service/internal/identity"
	"team-calendar-service/internal/model"
	"team-calendar-service/internal/repository"
)

// IdentityService разрешает принципала в пользователя с ролью и командой
// и выполняет вход через провайдер идентификации.
type IdentityService struct {
	users    UserRepository
	provider identity.Provider
}

// NewIdentityService создаёт новый сервис идентификации.
func NewIdentityService(users UserRepository, provider identity.Provider) *IdentityService {
	return &IdentityService{
		users:    users,
		provider: provider,
	}
}

// Resolve возвращает пользователя по идентификатору принципала.
// Неизвестный или деактивированный принципал → IDENTITY_NOT_FOUND.
func (s *IdentityService) Resolve(ctx context.Context, principalID string) (model.User, error) {
	return resolveActor(ctx, s.users, principalID)
}

// Login проверяет учётные данные через провайдер и возвращает пользователя.
// Сама проверка пароля (локальная или LDAP) сервису не видна.
func (s *IdentityService) Login(ctx context.Context, username, password string) (model.User, error) {
	if username == "" {
		return model.User{}, ErrValidation("username", "is required")
	}
	if password == "" {
		return model.User{}, ErrValidation("password", "is required")
	}

	principalID, err := s.provider.Verify(ctx, identity.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return model.User{}, ErrInvalidCredentials()
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.User{}, ErrStoreUnavailable(err)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to verify credentials",
			Status:  500,
			Err:     err,
		}
	}

	return resolveActor(ctx, s.users, principalID)
}

// resolveActor — общий для сервисов шаг разрешения актора: каждый запрос
// несёт идентификатор принципала явно, никакого ambient-состояния входа нет.
func resolveActor(ctx context.Context, users UserRepository, actorID string) (model.User, error) {
	if actorID == "" {
		return model.User{}, ErrIdentityNotFound()
	}
	actor, err := users.GetByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrIdentityNotFound()
		}
		if errors.Is(err, repository.ErrStoreUnavailable) {
			return model.User{}, ErrStoreUnavailable(err)
		}
		return model.User{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to resolve actor",
			Status:  500,
			Err:     err,
		}
	}
	if !actor.IsActive {
		return model.User{}, ErrIdentityNotFound()
	}
	return actor, nil
}
