package model

// Role представляет роль пользователя в системе.
type Role string

const (
	// RoleUser — обычный пользователь: управляет только своими событиями.
	RoleUser Role = "USER"
	// RoleManager — менеджер: утверждает заявки участников своей команды.
	RoleManager Role = "MANAGER"
	// RoleAdmin — администратор: утверждает заявки любой команды и управляет пользователями.
	RoleAdmin Role = "ADMIN"
)

// IsElevated сообщает, относится ли роль к утверждающим (менеджер или администратор).
func (r Role) IsElevated() bool {
	return r == RoleManager || r == RoleAdmin
}

// Valid проверяет, что роль принадлежит закрытому перечислению.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// User описывает пользователя: юзернейм, роль, команду и статус активности.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	TeamName string `json:"team_name"`
	IsActive bool   `json:"is_active"`
}
