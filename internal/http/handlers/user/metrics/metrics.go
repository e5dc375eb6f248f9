// Package metrics реализует HTTP-обработчик подсчёта метрик соблюдения диеты.
//
// Handler извлекает ID пользователя из URL-параметров, проверяет, что это UUID,
// вызывает бизнес-логику подсчёта метрик и возвращает результат в JSON-формате.
package metrics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/sl"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Handler обрабатывает запросы на подсчёт метрик пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики подсчёта метрик
}

// Service описывает интерфейс бизнес-логики подсчёта метрик.
type Service interface {
	Metrics(ctx context.Context, userID string) (models.Metrics, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Метрики соблюдения диеты
// @Description Возвращает количество приёмов пищи, распределение по диете и лучшую непрерывную серию.
// @Tags Users
// @Produce  json
// @Param id path string true "UUID пользователя"
// @Success 200 {object} map[string]any "Метрики пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный UUID"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчёте метрик"
// @Router /users/{id}/metrics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.metrics"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	res, err := h.service.Metrics(r.Context(), id)
	if err != nil {
		log.Error("failed to count metrics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count metrics"))
		return
	}

	log.Info("success to count metrics", slog.Int("total", res.TotalMealsQuantity))
	render.JSON(w, r, map[string]any{
		"metrics": res,
	})
}
