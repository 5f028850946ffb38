// Package policy реализует чистый движок авторизации: решение о доступе
// вычисляется только из (актор, действие, контекст), без обращения к хранилищу
// и без глобального состояния.
package policy

import "team-calendar-service/internal/model"

// DenyReason — закрытый набор кодов отказа в доступе.
type DenyReason string

const (
	// ReasonRoleRequired — действие требует роли менеджера или администратора.
	ReasonRoleRequired DenyReason = "ROLE_REQUIRED"
	// ReasonForeignTeam — событие или календарь принадлежит чужой команде.
	ReasonForeignTeam DenyReason = "FOREIGN_TEAM"
	// ReasonSelfDecision — владелец не может утверждать собственную заявку.
	ReasonSelfDecision DenyReason = "SELF_DECISION"
	// ReasonNotPending — событие уже получило финальный статус.
	ReasonNotPending DenyReason = "NOT_PENDING"
	// ReasonNotOwner — действие доступно только владельцу события.
	ReasonNotOwner DenyReason = "NOT_OWNER"
	// ReasonOwnerOnly — событие видно только владельцу.
	ReasonOwnerOnly DenyReason = "OWNER_ONLY"
)

// Decision — результат проверки доступа: разрешение либо отказ с кодом причины.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow конструирует положительное решение.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny конструирует отказ с указанным кодом причины.
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// CanViewCalendar решает, может ли актор просматривать календарь команды.
// Своя команда доступна всем её участникам, чужие — менеджерам и администраторам.
func CanViewCalendar(actor model.User, teamName string) Decision {
	if actor.TeamName == teamName {
		return Allow()
	}
	if actor.Role.IsElevated() {
		return Allow()
	}
	return Deny(ReasonForeignTeam)
}

// CanViewEvent решает, видно ли актору конкретное событие.
//
// Владелец видит свои события всегда, администратор — все. Утверждённые
// события с областью TEAM видны участникам команды владельца, менеджерам —
// в любой команде (обязанность просмотра календарей). Неутверждённые
// (PENDING/REJECTED/CANCELLED) заявки видны помимо владельца только
// менеджеру команды владельца и администратору: менеджер чужой команды
// намеренно не видит чужие заявки.
func CanViewEvent(actor model.User, event model.Event) Decision {
	if actor.UserID == event.OwnerID {
		return Allow()
	}
	if actor.Role == model.RoleAdmin {
		return Allow()
	}

	if event.Status == model.StatusApproved {
		if event.Scope == model.ScopeTeam && actor.TeamName == event.TeamName {
			return Allow()
		}
		if event.Scope == model.ScopeTeam && actor.Role == model.RoleManager {
			return Allow()
		}
		// SELF-область видна только владельцу
		return Deny(ReasonOwnerOnly)
	}

	if actor.Role == model.RoleManager && actor.TeamName == event.TeamName {
		return Allow()
	}
	return Deny(ReasonForeignTeam)
}

// CanCreateEvent решает, может ли актор создать событие указанного типа и области.
// SELF-область доступна любому аутентифицированному пользователю; TEAM-область —
// менеджерам и администраторам, а для встреч — и обычным пользователям
// (транслировать отпуск на команду обычный пользователь не может).
func CanCreateEvent(actor model.User, kind model.EventKind, scope model.EventScope) Decision {
	if scope == model.ScopeSelf {
		return Allow()
	}
	if actor.Role.IsElevated() || kind == model.KindMeeting {
		return Allow()
	}
	return Deny(ReasonRoleRequired)
}

// CanDecide решает, может ли актор утвердить или отклонить заявку.
// Требуется роль менеджера или администратора, статус PENDING и запрет
// самоутверждения; менеджер решает только внутри своей команды,
// администратор — в любой.
func CanDecide(actor model.User, event model.Event) Decision {
	if !actor.Role.IsElevated() {
		return Deny(ReasonRoleRequired)
	}
	if event.Status != model.StatusPending {
		return Deny(ReasonNotPending)
	}
	if actor.UserID == event.OwnerID {
		return Deny(ReasonSelfDecision)
	}
	if actor.Role == model.RoleAdmin || actor.TeamName == event.TeamName {
		return Allow()
	}
	return Deny(ReasonForeignTeam)
}

// CanCancel решает, может ли актор отозвать заявку: только владелец и только до решения.
func CanCancel(actor model.User, event model.Event) Decision {
	if actor.UserID != event.OwnerID {
		return Deny(ReasonNotOwner)
	}
	if event.Status != model.StatusPending {
		return Deny(ReasonNotPending)
	}
	return Allow()
}

// CanManageUsers решает, может ли актор менять роли, команды и активность
// пользователей, а также создавать команды. Доступно только администратору.
func CanManageUsers(actor model.User) Decision {
	if actor.Role == model.RoleAdmin {
		return Allow()
	}
	return Deny(ReasonRoleRequired)
}
