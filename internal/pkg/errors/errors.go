package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials используется, когда пароль не совпадает с сохранённым хешем.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности (username/email уже заняты).
	ErrConflict = errors.New("resource state conflict")
)
