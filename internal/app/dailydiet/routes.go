// Package dailydiet предоставляет маршруты для основного приложения.
package dailydiet

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/daily-diet/internal/config"
	"github.com/magabrotheeeer/daily-diet/internal/http/handlers/health"
	mealcreate "github.com/magabrotheeeer/daily-diet/internal/http/handlers/meal/create"
	meallist "github.com/magabrotheeeer/daily-diet/internal/http/handlers/meal/list"
	mealread "github.com/magabrotheeeer/daily-diet/internal/http/handlers/meal/read"
	mealremove "github.com/magabrotheeeer/daily-diet/internal/http/handlers/meal/remove"
	mealupdate "github.com/magabrotheeeer/daily-diet/internal/http/handlers/meal/update"
	usermetrics "github.com/magabrotheeeer/daily-diet/internal/http/handlers/user/metrics"
	userregister "github.com/magabrotheeeer/daily-diet/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/daily-diet/internal/http/middlewarectx"
	mealservice "github.com/magabrotheeeer/daily-diet/internal/services/meal"
	userservice "github.com/magabrotheeeer/daily-diet/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, mealService *mealservice.Service, userService *userservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/users", func(r chi.Router) {
		// Открытые конечные точки: регистрация сама выпускает cookie,
		// метрики доступны по UUID пользователя без сессии.
		r.Post("/", userregister.New(logger, userService, cfg.CookieTTL).ServeHTTP)
		r.Get("/{id}/metrics", usermetrics.New(logger, userService).ServeHTTP)
	})

	r.Route("/meals", func(r chi.Router) {
		// Создание записи не прикрыто сессионным middleware: при отсутствии
		// cookie контракт требует 404 от разрешения пользователя, а не 401.
		r.Post("/", mealcreate.New(logger, mealService).ServeHTTP)

		// Группа с проверкой сессионной cookie
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/", meallist.New(logger, mealService).ServeHTTP)
			r.Get("/{id}", mealread.New(logger, mealService).ServeHTTP)
			r.Put("/{id}", mealupdate.New(logger, mealService).ServeHTTP)
			r.Delete("/{id}", mealremove.New(logger, mealService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
