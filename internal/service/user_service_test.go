package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/repository"
	"team-calendar-service/internal/service"
	"team-calendar-service/internal/service/mocks"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		teamName   string
		setupMocks func(ur *mocks.UserRepository)
		wantErr    string
	}{
		{
			name:     "Successful registration",
			username: "carol",
			password: "long-enough-pass",
			teamName: "Engineering",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("CreateUser", mock.Anything, mock.AnythingOfType("model.User"), mock.AnythingOfType("string")).
					Return(func(ctx context.Context, u model.User, _ string) model.User { return u }, nil)
			},
		},
		{
			name:       "Short password rejected",
			username:   "carol",
			password:   "short",
			teamName:   "Engineering",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantErr:    "VALIDATION_ERROR",
		},
		{
			name:     "Duplicate username",
			username: "alice",
			password: "long-enough-pass",
			teamName: "Engineering",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("CreateUser", mock.Anything, mock.AnythingOfType("model.User"), mock.AnythingOfType("string")).
					Return(model.User{}, repository.ErrUserExists)
			},
			wantErr: "USER_EXISTS",
		},
		{
			name:     "Unknown team",
			username: "carol",
			password: "long-enough-pass",
			teamName: "Nonexistent",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("CreateUser", mock.Anything, mock.AnythingOfType("model.User"), mock.AnythingOfType("string")).
					Return(model.User{}, repository.ErrTeamNotFound)
			},
			wantErr: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)

			svc := service.NewUserService(ur)
			got, err := svc.Register(context.Background(), tt.username, tt.password, tt.teamName)

			if tt.wantErr != "" {
				assertAppError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, got.Username)
				assert.Equal(t, model.RoleUser, got.Role)
				assert.True(t, got.IsActive)
				assert.NotEmpty(t, got.UserID)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestUserService_SetIsActive(t *testing.T) {
	tests := []struct {
		name       string
		actorID    string
		setupMocks func(ur *mocks.UserRepository)
		wantErr    string
	}{
		{
			name:    "Admin deactivates user",
			actorID: "a1",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, rootAdmin)
				deactivated := alice
				deactivated.IsActive = false
				ur.On("SetIsActive", mock.Anything, "u1", false).Return(deactivated, nil)
			},
		},
		{
			name:    "Manager is not enough",
			actorID: "m1",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, maryMgr)
			},
			wantErr: "ACCESS_DENIED",
		},
		{
			name:    "Plain user denied",
			actorID: "u2",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, bob)
			},
			wantErr: "ACCESS_DENIED",
		},
		{
			name:    "Target not found",
			actorID: "a1",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, rootAdmin)
				ur.On("SetIsActive", mock.Anything, "u1", false).
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantErr: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)

			svc := service.NewUserService(ur)
			got, err := svc.SetIsActive(context.Background(), tt.actorID, "u1", false)

			if tt.wantErr != "" {
				assertAppError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.False(t, got.IsActive)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestUserService_SetRoleAndTeam(t *testing.T) {
	promoted := alice
	promoted.Role = model.RoleManager
	promoted.TeamName = "t2"

	tests := []struct {
		name       string
		actorID    string
		role       model.Role
		teamName   string
		setupMocks func(ur *mocks.UserRepository)
		wantErr    string
	}{
		{
			name:     "Admin promotes user to manager",
			actorID:  "a1",
			role:     model.RoleManager,
			teamName: "t2",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, rootAdmin)
				ur.On("SetRoleAndTeam", mock.Anything, "u1", model.RoleManager, "t2").
					Return(promoted, nil)
			},
		},
		{
			name:       "Invalid role rejected",
			actorID:    "a1",
			role:       model.Role("SUPERVISOR"),
			teamName:   "t2",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantErr:    "VALIDATION_ERROR",
		},
		{
			name:     "Manager cannot change roles",
			actorID:  "m1",
			role:     model.RoleManager,
			teamName: "t2",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, maryMgr)
			},
			wantErr: "ACCESS_DENIED",
		},
		{
			name:     "Unknown team",
			actorID:  "a1",
			role:     model.RoleManager,
			teamName: "nope",
			setupMocks: func(ur *mocks.UserRepository) {
				expectUser(ur, rootAdmin)
				ur.On("SetRoleAndTeam", mock.Anything, "u1", model.RoleManager, "nope").
					Return(model.User{}, repository.ErrTeamNotFound)
			},
			wantErr: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)

			svc := service.NewUserService(ur)
			got, err := svc.SetRoleAndTeam(context.Background(), tt.actorID, "u1", tt.role, tt.teamName)

			if tt.wantErr != "" {
				assertAppError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RoleManager, got.Role)
				assert.Equal(t, "t2", got.TeamName)
			}
			ur.AssertExpectations(t)
		})
	}
}
