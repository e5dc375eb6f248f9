// Package remove реализует HTTP-обработчик для удаления записи по ID.
//
// Удаление несуществующей записи — тихий no-op, ответ в обоих случаях
// 204 No Content.
package remove

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
)

// Handler управляет HTTP-запросами на удаление записей о приёмах пищи.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики удаления
}

// Service описывает интерфейс бизнес-логики удаления записи.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить запись о приёме пищи
// @Description Удаляет запись по её UUID.
// @Tags Meals
// @Param id path string true "UUID записи"
// @Success 204 "Запись удалена (или отсутствовала)"
// @Failure 400 {object} response.ErrorResponse "Некорректный UUID"
// @Failure 401 {object} response.ErrorResponse "Отсутствует сессионная cookie"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении записи"
// @Router /meals/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.remove"

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

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove meal"))
		return
	}

	log.Info("success to remove meal", slog.Int("removed_count", count))
	w.WriteHeader(http.StatusNoContent)
}
