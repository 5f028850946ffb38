package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"team-calendar-service/internal/lifecycle"
	"team-calendar-service/internal/model"
)

var (
	owner    = model.User{UserID: "u1", Role: model.RoleUser, TeamName: "t1"}
	manager  = model.User{UserID: "m1", Role: model.RoleManager, TeamName: "t1"}
	decision = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
)

func pendingVacation() model.Event {
	return model.Event{
		EventID:  "e1",
		Kind:     model.KindVacation,
		OwnerID:  owner.UserID,
		TeamName: "t1",
		Status:   model.StatusPending,
		Version:  1,
	}
}

func TestInitialStatus(t *testing.T) {
	// Встречи рождаются утверждёнными, отпуска ждут решения
	assert.Equal(t, model.StatusApproved, lifecycle.InitialStatus(model.KindMeeting))
	assert.Equal(t, model.StatusPending, lifecycle.InitialStatus(model.KindVacation))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, lifecycle.IsTerminal(model.StatusPending))
	assert.True(t, lifecycle.IsTerminal(model.StatusApproved))
	assert.True(t, lifecycle.IsTerminal(model.StatusRejected))
	assert.True(t, lifecycle.IsTerminal(model.StatusCancelled))
}

func TestApprove(t *testing.T) {
	next, err := lifecycle.Approve(pendingVacation(), manager, decision)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusApproved, next.Status)
	if assert.NotNil(t, next.ApproverID) {
		assert.Equal(t, "m1", *next.ApproverID)
	}
	if assert.NotNil(t, next.DecidedAt) {
		assert.Equal(t, decision, *next.DecidedAt)
	}
}

func TestReject(t *testing.T) {
	next, err := lifecycle.Reject(pendingVacation(), manager, decision, "overlaps release week")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusRejected, next.Status)
	assert.Equal(t, "overlaps release week", next.DecisionNote)
	if assert.NotNil(t, next.ApproverID) {
		assert.Equal(t, "m1", *next.ApproverID)
	}
}

func TestCancel(t *testing.T) {
	next, err := lifecycle.Cancel(pendingVacation(), decision)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, next.Status)
	// Отзыв не является решением — утверждающий не фиксируется
	assert.Nil(t, next.ApproverID)
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	// Из APPROVED, REJECTED и CANCELLED переходов нет — в том числе для встреч,
	// которые рождаются утверждёнными
	for _, status := range []model.EventStatus{model.StatusApproved, model.StatusRejected, model.StatusCancelled} {
		e := pendingVacation()
		e.Status = status

		var invalid *lifecycle.InvalidTransitionError

		_, err := lifecycle.Approve(e, manager, decision)
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, status, invalid.From)

		_, err = lifecycle.Reject(e, manager, decision, "")
		assert.ErrorAs(t, err, &invalid)

		_, err = lifecycle.Cancel(e, decision)
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestApproveRefusesOwnerAndPlainRole(t *testing.T) {
	// Самоутверждение и решение без роли — нарушение инварианта даже в обход policy
	_, err := lifecycle.Approve(pendingVacation(), model.User{UserID: "u1", Role: model.RoleAdmin}, decision)
	assert.Error(t, err)

	_, err = lifecycle.Approve(pendingVacation(), model.User{UserID: "u9", Role: model.RoleUser}, decision)
	assert.Error(t, err)
}
