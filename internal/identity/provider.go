// Package identity реализует проверку учётных данных: контракт провайдера
// идентификации и локальную реализацию поверх хэшей паролей в хранилище.
// Режим (локальный или LDAP) — вопрос конфигурации; ядро видит только Provider.
package identity

import (
	"context"
	"errors"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль
// или попытке входа деактивированного пользователя.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials — учётные данные, предъявленные при входе.
type Credentials struct {
	Username string
	Password string
}

// Provider проверяет учётные данные и возвращает идентификатор принципала.
// Разрешение роли и команды выполняется отдельно, по идентификатору.
type Provider interface {
	Verify(ctx context.Context, creds Credentials) (string, error)
}
