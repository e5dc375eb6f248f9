// Package list реализует HTTP-обработчик для получения всех записей пользователя.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/daily-diet/internal/http/middlewarectx"
	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/sl"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Handler обрабатывает запросы на получение списка записей о приёмах пищи.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики получения списка
}

// Service описывает интерфейс бизнес-логики получения списка записей.
type Service interface {
	List(ctx context.Context, sessionToken string) ([]*models.Meal, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей о приёмах пищи
// @Description Возвращает все записи пользователя, определяемого сессионной cookie.
// @Tags Meals
// @Produce  json
// @Success 200 {object} map[string]any "Записи пользователя"
// @Failure 401 {object} response.ErrorResponse "Отсутствует сессионная cookie"
// @Failure 404 {object} response.ErrorResponse "Пользователь по токену сессии не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при получении списка"
// @Router /meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, ok := r.Context().Value(middlewarectx.SessionToken).(string)
	if !ok || token == "" {
		log.Error("session token not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), token)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Error("session user not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to list meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list meals"))
		return
	}

	if res == nil {
		res = []*models.Meal{}
	}

	log.Info("success to list meals", slog.Int("count", len(res)))
	render.JSON(w, r, map[string]any{
		"meals": res,
	})
}
