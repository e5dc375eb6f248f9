// Package user содержит бизнес-логику регистрации пользователей
// и подсчёта метрик соблюдения диеты.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser добавляет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// UserExistsByEmail проверяет, занята ли электронная почта.
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	// ListMealsOrdered возвращает записи пользователя, упорядоченные по date_time.
	ListMealsOrdered(ctx context.Context, userID string) ([]*models.Meal, error)
}

// Service реализует бизнес-логику работы с пользователями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register создает нового пользователя с привязанным токеном сессии.
// Если почта уже занята, возвращает models.ErrEmailTaken. Проверка
// существования — оптимизация; гонку одинаковых регистраций закрывает
// уникальный индекс по email в хранилище.
func (s *Service) Register(ctx context.Context, req models.DummyUser, sessionToken string) error {
	exists, err := s.repo.UserExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrEmailTaken
	}

	entry := models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		SessionID: sessionToken,
	}
	if err := s.repo.CreateUser(ctx, entry); err != nil {
		return err
	}

	s.log.Info("registered new user", slog.String("id", entry.ID))
	return nil
}

// Metrics подсчитывает статистику соблюдения диеты пользователем.
// Записи обходятся один раз в порядке возрастания date_time; лучшая серия —
// самая длинная непрерывная последовательность записей с on_diet = true.
func (s *Service) Metrics(ctx context.Context, userID string) (models.Metrics, error) {
	meals, err := s.repo.ListMealsOrdered(ctx, userID)
	if err != nil {
		return models.Metrics{}, err
	}

	var metrics models.Metrics
	var currentSequence int

	metrics.TotalMealsQuantity = len(meals)
	for _, m := range meals {
		if m.OnDiet {
			metrics.MealsOnDietQuantity++
			currentSequence++
			if currentSequence > metrics.BestSequenceOfMealsOnDiet {
				metrics.BestSequenceOfMealsOnDiet = currentSequence
			}
		} else {
			metrics.MealsOffDietQuantity++
			currentSequence = 0
		}
	}

	return metrics, nil
}
