// Package register реализует HTTP-обработчик регистрации пользователей.
//
// Handler принимает JSON-запрос с данными пользователя, валидирует их,
// выпускает сессионную cookie (если её ещё нет) и создаёт запись пользователя.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/daily-diet/internal/http/response"
	"github.com/magabrotheeeer/daily-diet/internal/lib/session"
	"github.com/magabrotheeeer/daily-diet/internal/lib/sl"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Handler управляет HTTP-запросами на регистрацию пользователей.
type Handler struct {
	log       *slog.Logger        // Логгер для записи информации и ошибок
	service   Service             // Сервис бизнес-логики регистрации
	validate  *validator.Validate // Валидатор структуры входящих данных
	cookieTTL time.Duration       // Срок жизни сессионной cookie
}

// Service описывает интерфейс бизнес-логики регистрации пользователя.
type Service interface {
	Register(ctx context.Context, req models.DummyUser, sessionToken string) error
}

// New создает новый Handler с переданными логгером, сервисом и сроком жизни cookie.
func New(log *slog.Logger, service Service, cookieTTL time.Duration) *Handler {
	return &Handler{
		log:       log,
		service:   service,
		validate:  validator.New(),
		cookieTTL: cookieTTL,
	}
}

// ServeHTTP godoc
// @Summary Зарегистрировать пользователя
// @Description Создает нового пользователя и устанавливает сессионную cookie, если её ещё нет.
// @Tags Users
// @Accept  json
// @Param request body models.DummyUser true "Данные нового пользователя"
// @Success 201 "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Пользователь с такой почтой уже существует"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при регистрации"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
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

	// Токен выпускается лениво: повторная регистрация с того же клиента
	// переиспользует уже выданную cookie.
	token := session.TokenFromRequest(r)
	if token == "" {
		token = session.NewToken()
		session.SetCookie(w, token, h.cookieTTL)
	}

	if err := h.service.Register(r.Context(), req, token); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			log.Error("user already exists", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("the user already exists"))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("success to register user")
	w.WriteHeader(http.StatusCreated)
}
