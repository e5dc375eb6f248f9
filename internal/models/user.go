// Package models содержит доменные структуры, описывающие пользователя и приём пищи,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// SessionID — непрозрачный токен сессии в формате UUID, назначается при регистрации
// и далее сверяется со значением cookie.
type User struct {
	ID        string    `json:"id"`         // Уникальный идентификатор пользователя
	Name      string    `json:"name"`       // Имя пользователя
	Email     string    `json:"email"`      // Электронная почта (уникальная)
	AvatarURL string    `json:"avatar_url"` // Ссылка на аватар
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"` // Дата создания записи
}

// DummyUser используется для приёма данных из JSON-запроса регистрации,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Name      string `json:"name" validate:"required"`            // Имя пользователя
	Email     string `json:"email" validate:"required,email"`     // Электронная почта
	AvatarURL string `json:"avatar_url" validate:"required"`      // Ссылка на аватар
}
