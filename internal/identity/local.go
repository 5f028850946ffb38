package identity

import (
	"context"
	"errors"
	"fmt"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore описывает контракт хранилища учётных данных для локального провайдера.
type CredentialStore interface {
	GetCredentials(ctx context.Context, username string) (model.User, string, error)
}

// LocalProvider проверяет пароли по bcrypt-хэшам из хранилища.
type LocalProvider struct {
	store CredentialStore
}

// NewLocalProvider создаёт провайдер локальной идентификации.
func NewLocalProvider(store CredentialStore) *LocalProvider {
	return &LocalProvider{store: store}
}

// Verify сверяет пароль с хэшем и возвращает идентификатор пользователя.
// Несуществующий юзернейм, неверный пароль и деактивированная учётная запись
// неразличимы для вызывающего: во всех случаях ErrInvalidCredentials.
func (p *LocalProvider) Verify(ctx context.Context, creds Credentials) (string, error) {
	user, hash, err := p.store.GetCredentials(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get credentials: %w", err)
	}
	if !user.IsActive || hash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.UserID, nil
}

// HashPassword возвращает bcrypt-хэш пароля для сохранения при регистрации.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
