package repository

import "errors"

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists возвращается при конфликте по user_id или username.
	ErrUserExists = errors.New("user already exists")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrTeamExists возвращается при попытке создать дубликат команды.
	ErrTeamExists = errors.New("team already exists")

	// ErrEventNotFound возвращается, если событие не найдено.
	ErrEventNotFound = errors.New("event not found")

	// ErrEventExists возвращается при конфликте ID события.
	ErrEventExists = errors.New("event already exists")

	// ErrVersionConflict возвращается, если compare-and-set не прошёл:
	// статус или версия события изменились между чтением и записью.
	ErrVersionConflict = errors.New("event version conflict")

	// ErrStoreUnavailable возвращается при транзиентных сбоях хранилища
	// (таймаут, обрыв соединения); вызов безопасно повторить.
	ErrStoreUnavailable = errors.New("store unavailable")
)
