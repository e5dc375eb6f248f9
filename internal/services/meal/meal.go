// Package meal содержит бизнес-логику для управления записями о приёмах пищи,
// включая кеширование одиночных записей.
package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Repository определяет методы для работы с приёмами пищи в хранилище.
type Repository interface {
	// CreateMeal добавляет новую запись.
	CreateMeal(ctx context.Context, meal models.Meal) error
	// GetMeal возвращает запись по ID или nil, если записи нет.
	GetMeal(ctx context.Context, id string) (*models.Meal, error)
	// ListMeals возвращает все записи пользователя.
	ListMeals(ctx context.Context, userID string) ([]*models.Meal, error)
	// UpdateMeal обновляет запись по ID и возвращает количество изменённых строк.
	UpdateMeal(ctx context.Context, id string, meal models.Meal) (int, error)
	// DeleteMeal удаляет запись по ID и возвращает количество удалённых строк.
	DeleteMeal(ctx context.Context, id string) (int, error)
	// GetUserBySessionID возвращает пользователя по токену сессии.
	GetUserBySessionID(ctx context.Context, sessionID string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с приёмами пищи, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ResolveUser возвращает пользователя по токену сессии.
func (s *Service) ResolveUser(ctx context.Context, sessionToken string) (*models.User, error) {
	return s.repo.GetUserBySessionID(ctx, sessionToken)
}

// Create создает новую запись о приёме пищи для пользователя с указанным
// токеном сессии, кеширует её и возвращает ID.
func (s *Service) Create(ctx context.Context, sessionToken string, req models.DummyMeal) (string, error) {
	user, err := s.repo.GetUserBySessionID(ctx, sessionToken)
	if err != nil {
		return "", err
	}

	entry := models.Meal{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		OnDiet:      *req.OnDiet,
	}

	if err := s.repo.CreateMeal(ctx, entry); err != nil {
		return "", err
	}

	s.log.Info("created new meal", slog.String("id", entry.ID))

	cacheKey := fmt.Sprintf("meal:%s", entry.ID)
	if err := s.cache.Set(cacheKey, entry, time.Hour); err != nil {
		s.log.Warn("failed to cache meal", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return entry.ID, nil
}

// List возвращает все записи пользователя с указанным токеном сессии.
func (s *Service) List(ctx context.Context, sessionToken string) ([]*models.Meal, error) {
	user, err := s.repo.GetUserBySessionID(ctx, sessionToken)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMeals(ctx, user.ID)
}

// Read возвращает запись по ID, используя кеш или репозиторий.
// Отсутствующая запись — это nil без ошибки.
func (s *Service) Read(ctx context.Context, id string) (*models.Meal, error) {
	var result *models.Meal
	cacheKey := fmt.Sprintf("meal:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to cache meal", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// Update обновляет запись по ID, инвалидирует кеш и возвращает
// количество изменённых строк.
func (s *Service) Update(ctx context.Context, id string, req models.DummyMeal) (int, error) {
	cacheKey := fmt.Sprintf("meal:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	entry := models.Meal{
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		OnDiet:      *req.OnDiet,
	}
	return s.repo.UpdateMeal(ctx, id, entry)
}

// Remove удаляет запись по ID, инвалидирует кеш и возвращает
// количество удалённых строк.
func (s *Service) Remove(ctx context.Context, id string) (int, error) {
	cacheKey := fmt.Sprintf("meal:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.DeleteMeal(ctx, id)
}
