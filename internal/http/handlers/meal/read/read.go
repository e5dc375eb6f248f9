// Package read реализует HTTP-обработчик для получения конкретной записи по ID.
//
// Handler извлекает ID из URL-параметров, проверяет, что это UUID, вызывает
// бизнес-логику чтения и возвращает запись в JSON-формате. Отсутствующая
// запись — это успешный ответ с null, а не 404.
package read

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

// Handler обрабатывает запросы на получение записи по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики чтения записи
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, id string) (*models.Meal, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить запись о приёме пищи
// @Description Возвращает запись по её UUID. Для несуществующей записи возвращает null.
// @Tags Meals
// @Produce  json
// @Param id path string true "UUID записи"
// @Success 200 {object} map[string]any "Запись или null"
// @Failure 400 {object} response.ErrorResponse "Некорректный UUID"
// @Failure 401 {object} response.ErrorResponse "Отсутствует сессионная cookie"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении записи"
// @Router /meals/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.read"

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

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read meal"))
		return
	}

	log.Info("success to read meal", slog.String("id", id))
	render.JSON(w, r, map[string]any{
		"meal": res,
	})
}
