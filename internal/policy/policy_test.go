package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/policy"
)

// Тестовые акторы
var (
	userT1    = model.User{UserID: "u1", Username: "alice", Role: model.RoleUser, TeamName: "t1", IsActive: true}
	userT2    = model.User{UserID: "u2", Username: "bob", Role: model.RoleUser, TeamName: "t2", IsActive: true}
	managerT1 = model.User{UserID: "m1", Username: "mary", Role: model.RoleManager, TeamName: "t1", IsActive: true}
	managerT2 = model.User{UserID: "m2", Username: "mike", Role: model.RoleManager, TeamName: "t2", IsActive: true}
	admin     = model.User{UserID: "a1", Username: "root", Role: model.RoleAdmin, TeamName: "t2", IsActive: true}
)

func vacation(owner model.User, status model.EventStatus) model.Event {
	return model.Event{
		EventID:  "e1",
		Kind:     model.KindVacation,
		OwnerID:  owner.UserID,
		TeamName: owner.TeamName,
		Scope:    model.ScopeSelf,
		Status:   status,
	}
}

func teamMeeting(owner model.User) model.Event {
	return model.Event{
		EventID:  "e2",
		Kind:     model.KindMeeting,
		OwnerID:  owner.UserID,
		TeamName: owner.TeamName,
		Scope:    model.ScopeTeam,
		Status:   model.StatusApproved,
	}
}

func TestCanViewCalendar(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.User
		team    string
		allowed bool
	}{
		{"own team", userT1, "t1", true},
		{"foreign team denied for plain user", userT1, "t2", false},
		{"manager views foreign team", managerT1, "t2", true},
		{"admin views any team", admin, "t1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanViewCalendar(tt.actor, tt.team)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestCanViewEvent(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.User
		event   model.Event
		allowed bool
	}{
		{"owner sees own pending vacation", userT1, vacation(userT1, model.StatusPending), true},
		{"teammate does not see others pending vacation", userT2, vacation(userT1, model.StatusPending), false},
		{"team manager sees pending vacation", managerT1, vacation(userT1, model.StatusPending), true},
		{"foreign manager does not see pending vacation", managerT2, vacation(userT1, model.StatusPending), false},
		{"admin sees any pending vacation", admin, vacation(userT1, model.StatusPending), true},
		{"owner sees own rejected vacation", userT2, vacation(userT2, model.StatusRejected), true},
		{"teammate does not see others rejected vacation", userT1, vacation(managerT1, model.StatusRejected), false},
		{"team meeting visible to teammate", userT1, teamMeeting(managerT1), true},
		{"team meeting hidden from other team", userT2, teamMeeting(managerT1), false},
		{"approved self event hidden from teammate", userT1, vacation(managerT1, model.StatusApproved), false},
		{"manager sees foreign approved team event", managerT2, teamMeeting(userT1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanViewEvent(tt.actor, tt.event)
			assert.Equal(t, tt.allowed, d.Allowed)
		})
	}
}

func TestCanCreateEvent(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.User
		kind    model.EventKind
		scope   model.EventScope
		allowed bool
	}{
		{"self meeting by plain user", userT1, model.KindMeeting, model.ScopeSelf, true},
		{"self vacation by plain user", userT1, model.KindVacation, model.ScopeSelf, true},
		{"team meeting by plain user", userT1, model.KindMeeting, model.ScopeTeam, true},
		{"team vacation by plain user denied", userT1, model.KindVacation, model.ScopeTeam, false},
		{"team vacation by manager", managerT1, model.KindVacation, model.ScopeTeam, true},
		{"team vacation by admin", admin, model.KindVacation, model.ScopeTeam, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanCreateEvent(tt.actor, tt.kind, tt.scope)
			assert.Equal(t, tt.allowed, d.Allowed)
		})
	}
}

func TestCanDecide(t *testing.T) {
	managerOwnVacation := vacation(managerT1, model.StatusPending)
	adminOwnVacation := vacation(admin, model.StatusPending)

	tests := []struct {
		name    string
		actor   model.User
		event   model.Event
		allowed bool
		reason  policy.DenyReason
	}{
		{"plain user cannot decide", userT2, vacation(userT1, model.StatusPending), false, policy.ReasonRoleRequired},
		{"team manager decides", managerT1, vacation(userT1, model.StatusPending), true, ""},
		{"foreign manager cannot decide", managerT2, vacation(userT1, model.StatusPending), false, policy.ReasonForeignTeam},
		{"admin decides across teams", admin, vacation(userT1, model.StatusPending), true, ""},
		{"manager cannot decide own vacation", managerT1, managerOwnVacation, false, policy.ReasonSelfDecision},
		{"admin cannot decide own vacation", admin, adminOwnVacation, false, policy.ReasonSelfDecision},
		{"approved event not decidable", managerT1, vacation(userT1, model.StatusApproved), false, policy.ReasonNotPending},
		{"cancelled event not decidable", admin, vacation(userT1, model.StatusCancelled), false, policy.ReasonNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanDecide(tt.actor, tt.event)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.User
		event   model.Event
		allowed bool
		reason  policy.DenyReason
	}{
		{"owner cancels pending", userT1, vacation(userT1, model.StatusPending), true, ""},
		{"non-owner cannot cancel", managerT1, vacation(userT1, model.StatusPending), false, policy.ReasonNotOwner},
		{"admin cannot cancel others pending", admin, vacation(userT1, model.StatusPending), false, policy.ReasonNotOwner},
		{"owner cannot cancel approved", userT1, vacation(userT1, model.StatusApproved), false, policy.ReasonNotPending},
		{"owner cannot cancel rejected", userT1, vacation(userT1, model.StatusRejected), false, policy.ReasonNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.CanCancel(tt.actor, tt.event)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, policy.CanManageUsers(admin).Allowed)
	assert.False(t, policy.CanManageUsers(managerT1).Allowed)
	assert.False(t, policy.CanManageUsers(userT1).Allowed)
}
