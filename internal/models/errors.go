package models

import "errors"

// Сентинельные ошибки доменного слоя. Хранилище и сервисы оборачивают их
// через %w, обработчики проверяют errors.Is для выбора HTTP-статуса.
var (
	// ErrUserNotFound — токен сессии не соответствует ни одному пользователю.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — пользователь с такой электронной почтой уже существует.
	ErrEmailTaken = errors.New("email already taken")
)
