// Package create реализует HTTP-обработчик для создания новых записей о приёмах пищи.
//
// Handler принимает JSON-запрос с данными записи, валидирует их, разрешает
// токен сессии в пользователя и вызывает бизнес-логику создания записи.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/session"
	"github.com/magabrotheeeer/daily-diet/internal/lib/sl"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Handler управляет HTTP-запросами на создание новых записей о приёмах пищи.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи.
type Service interface {
	Create(ctx context.Context, sessionToken string, req models.DummyMeal) (string, error)
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
// @Summary Создать запись о приёме пищи
// @Description Создает новую запись для пользователя, определяемого сессионной cookie.
// @Tags Meals
// @Accept  json
// @Param request body models.DummyMeal true "Данные новой записи"
// @Success 201 "Запись создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Пользователь по токену сессии не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /meals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	// Cookie читается напрямую: при её отсутствии пользователь не найдётся,
	// и контракт требует 404, а не 401 от сессионного middleware.
	token := session.TokenFromRequest(r)

	id, err := h.service.Create(r.Context(), token, req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Error("session user not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to create meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create meal"))
		return
	}

	log.Info("success to create meal", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
}
