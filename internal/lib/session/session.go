// Package session содержит работу с сессионной cookie: имя, выпуск токена
// и установка cookie в ответ. Токен — непрозрачный UUID, сверяемый
// со значением session_id в таблице пользователей.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName — имя сессионной cookie.
const CookieName = "sessionId"

// NewToken выпускает новый непрозрачный токен сессии.
func NewToken() string {
	return uuid.New().String()
}

// TokenFromRequest возвращает значение сессионной cookie запроса
// или пустую строку, если cookie отсутствует.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetCookie устанавливает сессионную cookie на корневой путь с заданным сроком жизни.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
	})
}
