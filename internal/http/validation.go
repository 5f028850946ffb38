package http

import (
	"fmt"
	"regexp"
	"time"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/service"

	"github.com/google/uuid"
)

// Регулярки для проверки корректности идентификаторов и юзернеймов
var (
	reUserID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reUsername = regexp.MustCompile(`^[a-z0-9._-]{3,64}$`)
)

// Auth

// ValidateLoginRequest /auth/login — тело запроса
func ValidateLoginRequest(req loginRequest) error {
	if req.Username == "" {
		return service.ErrValidation("username", "is required")
	}
	if req.Password == "" {
		return service.ErrValidation("password", "is required")
	}
	return nil
}

// ValidateRegisterRequest /auth/register — тело запроса
func ValidateRegisterRequest(req registerRequest) error {
	if req.Username == "" {
		return service.ErrValidation("username", "is required")
	}
	if !reUsername.MatchString(req.Username) {
		return service.ErrValidation("username", "must be 3-64 lowercase letters, digits, '.', '_' or '-'")
	}
	if len(req.Password) < 8 {
		return service.ErrValidation("password", "must be at least 8 characters")
	}
	if req.TeamName == "" {
		return service.ErrValidation("team_name", "is required")
	}
	return nil
}

// Teams

// ValidateTeam Валидация команды для /team/add
func ValidateTeam(team model.Team) error {
	if team.TeamName == "" {
		return service.ErrValidation("team_name", "is required")
	}
	if len(team.Members) == 0 {
		return service.ErrValidation("members", "must not be empty")
	}

	for i, m := range team.Members {
		if m.UserID == "" {
			return service.ErrValidation(fmt.Sprintf("members[%d].user_id", i), "is required")
		}
		if !reUserID.MatchString(m.UserID) {
			return service.ErrValidation(fmt.Sprintf("members[%d].user_id", i), "contains invalid characters")
		}
		if m.Username == "" {
			return service.ErrValidation(fmt.Sprintf("members[%d].username", i), "is required")
		}
		if m.Role != "" && !m.Role.Valid() {
			return service.ErrValidation(fmt.Sprintf("members[%d].role", i), "must be USER, MANAGER or ADMIN")
		}
	}

	return nil
}

// ValidateTeamNameQuery Валидация query-параметра team_name для /team/get
func ValidateTeamNameQuery(teamName string) error {
	if teamName == "" {
		return service.ErrValidation("team_name", "is required")
	}
	return nil
}

// Users

// ValidateSetIsActiveRequest /users/setIsActive — тело запроса
func ValidateSetIsActiveRequest(req setIsActiveRequest) error {
	if req.UserID == "" {
		return service.ErrValidation("user_id", "is required")
	}
	if !reUserID.MatchString(req.UserID) {
		return service.ErrValidation("user_id", "contains invalid characters")
	}
	// is_active — bool, json.Decoder сам отловит неверный тип
	return nil
}

// ValidateSetRoleAndTeamRequest /users/setRoleAndTeam — тело запроса
func ValidateSetRoleAndTeamRequest(req setRoleAndTeamRequest) error {
	if req.UserID == "" {
		return service.ErrValidation("user_id", "is required")
	}
	if !reUserID.MatchString(req.UserID) {
		return service.ErrValidation("user_id", "contains invalid characters")
	}
	if !req.Role.Valid() {
		return service.ErrValidation("role", "must be USER, MANAGER or ADMIN")
	}
	if req.TeamName == "" {
		return service.ErrValidation("team_name", "is required")
	}
	return nil
}

// Events

// ValidateCreateEventRequest /event/create — тело запроса.
// Бизнес-инварианты времени проверяет фасад; здесь — форма запроса.
func ValidateCreateEventRequest(req createEventRequest) error {
	if req.Title == "" {
		return service.ErrValidation("title", "is required")
	}
	if !req.Kind.Valid() {
		return service.ErrValidation("kind", "must be MEETING or VACATION")
	}
	if !req.Scope.Valid() {
		return service.ErrValidation("scope", "must be SELF or TEAM")
	}
	if req.StartsAt.IsZero() {
		return service.ErrValidation("starts_at", "is required")
	}
	if req.EndsAt.IsZero() {
		return service.ErrValidation("ends_at", "is required")
	}
	return nil
}

// ValidateEventID проверяет, что идентификатор события — корректный UUID.
func ValidateEventID(eventID string) error {
	if eventID == "" {
		return service.ErrValidation("event_id", "is required")
	}
	if _, err := uuid.Parse(eventID); err != nil {
		return service.ErrValidation("event_id", "must be a valid UUID")
	}
	return nil
}

// ValidateDecideRequest /event/decide — тело запроса
func ValidateDecideRequest(req decideEventRequest) error {
	if err := ValidateEventID(req.EventID); err != nil {
		return err
	}
	if req.Decision != "approve" && req.Decision != "reject" {
		return service.ErrValidation("decision", "must be approve or reject")
	}
	return nil
}

// Calendar

// ParseCalendarRange разбирает query-параметры from и to для /calendar/get.
// Принимает RFC3339 или дату без времени (2006-01-02).
func ParseCalendarRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, err := parseTimeParam(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, service.ErrValidation("from", "must be RFC3339 or YYYY-MM-DD")
	}
	to, err := parseTimeParam(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, service.ErrValidation("to", "must be RFC3339 or YYYY-MM-DD")
	}
	return from, to, nil
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
