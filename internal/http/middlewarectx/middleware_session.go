// Package middlewarectx содержит HTTP middleware для обработки сессионной cookie.
//
// SessionMiddleware проверяет наличие cookie sessionId и кладёт её значение
// в контекст запроса для дальнейшего использования в обработчиках.
// Разрешение токена в пользователя выполняют сами обработчики:
// отсутствующая cookie — это 401, несуществующий пользователь — 404.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionToken — ключ для токена сессии в контексте.
const SessionToken Key = "sessionToken"

// SessionMiddleware возвращает HTTP middleware, который проверяет наличие
// сессионной cookie.
//
// Если cookie присутствует, её значение добавляется в контекст запроса,
// иначе возвращается ошибка с HTTP статусом 401 Unauthorized.
func SessionMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := session.TokenFromRequest(r)
			if token == "" {
				log.Error("missing session cookie")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
