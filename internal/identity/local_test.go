package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"team-calendar-service/internal/identity"
	"team-calendar-service/internal/model"
	"team-calendar-service/internal/repository"
)

// stubStore — хранилище учётных данных из одной записи
type stubStore struct {
	user model.User
	hash string
	err  error
}

func (s stubStore) GetCredentials(ctx context.Context, username string) (model.User, string, error) {
	if s.err != nil {
		return model.User{}, "", s.err
	}
	if username != s.user.Username {
		return model.User{}, "", repository.ErrUserNotFound
	}
	return s.user, s.hash, nil
}

func TestLocalProvider_Verify(t *testing.T) {
	hash, err := identity.HashPassword("correct horse battery")
	assert.NoError(t, err)

	active := model.User{UserID: "u1", Username: "alice", IsActive: true}

	tests := []struct {
		name    string
		store   stubStore
		creds   identity.Credentials
		wantID  string
		wantErr error
	}{
		{
			name:   "Correct password",
			store:  stubStore{user: active, hash: hash},
			creds:  identity.Credentials{Username: "alice", Password: "correct horse battery"},
			wantID: "u1",
		},
		{
			name:    "Wrong password",
			store:   stubStore{user: active, hash: hash},
			creds:   identity.Credentials{Username: "alice", Password: "wrong"},
			wantErr: identity.ErrInvalidCredentials,
		},
		{
			name:    "Unknown username",
			store:   stubStore{user: active, hash: hash},
			creds:   identity.Credentials{Username: "nobody", Password: "correct horse battery"},
			wantErr: identity.ErrInvalidCredentials,
		},
		{
			name: "Deactivated user",
			store: stubStore{
				user: model.User{UserID: "u1", Username: "alice", IsActive: false},
				hash: hash,
			},
			creds:   identity.Credentials{Username: "alice", Password: "correct horse battery"},
			wantErr: identity.ErrInvalidCredentials,
		},
		{
			name:    "Empty stored hash",
			store:   stubStore{user: active, hash: ""},
			creds:   identity.Credentials{Username: "alice", Password: "correct horse battery"},
			wantErr: identity.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := identity.NewLocalProvider(tt.store)
			gotID, err := p.Verify(context.Background(), tt.creds)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, gotID)
			}
		})
	}
}

func TestLocalProvider_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	// Сбой хранилища не должен маскироваться под неверный пароль
	p := identity.NewLocalProvider(stubStore{err: repository.ErrStoreUnavailable})

	_, err := p.Verify(context.Background(), identity.Credentials{Username: "alice", Password: "x"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrInvalidCredentials)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestHashPassword(t *testing.T) {
	h1, err := identity.HashPassword("some password")
	assert.NoError(t, err)
	h2, err := identity.HashPassword("some password")
	assert.NoError(t, err)

	// bcrypt солит каждый хэш
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "some password", h1)
}
