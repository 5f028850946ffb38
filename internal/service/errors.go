package service

import (
	"fmt"
	"net/http"

	"team-calendar-service/internal/model"
	"team-calendar-service/internal/policy"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных запросов клиента (битый JSON и т.п.).
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError для ошибки валидации конкретного поля.
func ErrValidation(field, detail string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("%s: %s", field, detail),
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrAccessDenied конструирует AppError для отказа движка авторизации.
// Код причины из policy попадает в сообщение и не теряется.
func ErrAccessDenied(reason policy.DenyReason) *AppError {
	return &AppError{
		Code:    "ACCESS_DENIED",
		Message: fmt.Sprintf("access denied: %s", reason),
		Status:  http.StatusForbidden,
	}
}

// ErrInvalidTransition конструирует AppError для нарушения конечного автомата,
// включая проигранные гонки утверждения: вызывающему следует перечитать событие.
func ErrInvalidTransition(from model.EventStatus, attempted string) *AppError {
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: fmt.Sprintf("cannot %s event in status %s", attempted, from),
		Status:  http.StatusConflict,
	}
}

// ErrIdentityNotFound конструирует AppError для неизвестного или деактивированного принципала.
func ErrIdentityNotFound() *AppError {
	return &AppError{
		Code:    "IDENTITY_NOT_FOUND",
		Message: "identity not found",
		Status:  http.StatusUnauthorized,
	}
}

// ErrInvalidCredentials конструирует AppError для неверной пары логин/пароль.
func ErrInvalidCredentials() *AppError {
	return &AppError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid username or password",
		Status:  http.StatusUnauthorized,
	}
}

// ErrStoreUnavailable конструирует AppError для транзиентного сбоя хранилища,
// пережившего все повторы фасада.
func ErrStoreUnavailable(err error) *AppError {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: "store unavailable",
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (например, TEAM_EXISTS).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if app, ok := err.(*AppError); ok {
		return app.Status == http.StatusNotFound
	}
	return false
}
