// Package update реализует HTTP-обработчик для обновления записи по ID.
//
// Handler извлекает ID из URL-параметров, валидирует тело запроса и вызывает
// бизнес-логику обновления. Обновление несуществующей записи — тихий no-op,
// ответ в обоих случаях 204 No Content.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/sl"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Handler управляет HTTP-запросами на обновление записей о приёмах пищи.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики обновления
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления записи.
type Service interface {
	Update(ctx context.Context, id string, req models.DummyMeal) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить запись о приёме пищи
// @Description Обновляет изменяемые поля записи по её UUID.
// @Tags Meals
// @Accept  json
// @Param id path string true "UUID записи"
// @Param request body models.DummyMeal true "Новые данные записи"
// @Success 204 "Запись обновлена (или отсутствовала)"
// @Failure 400 {object} response.ErrorResponse "Некорректный UUID, JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Отсутствует сессионная cookie"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении записи"
// @Router /meals/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.update"

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

	var req models.DummyMeal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	count, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update meal"))
		return
	}

	log.Info("success to update meal", slog.Int("updated_count", count))
	w.WriteHeader(http.StatusNoContent)
}
