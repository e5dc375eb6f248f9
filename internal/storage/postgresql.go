// Package storage реализует хранилище данных на основе PostgreSQL
// для учёта приёмов пищи и пользователей. Предоставляет методы
// создания, чтения, обновления и удаления записей, а также
// упорядоченную выборку для подсчёта метрик.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и приёмами пищи.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'meals'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table meals missing or query error: %w", err)
	}
	return nil
}

// ===== USER METHODS =====

// CreateUser вставляет нового пользователя. Нарушение уникальности email
// транслируется в models.ErrEmailTaken: ограничение в базе — авторитетный
// источник уникальности, предварительная проверка лишь оптимизация.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (id, name, email, avatar_url, session_id)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.AvatarURL, user.SessionID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, models.ErrEmailTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UserExistsByEmail проверяет, существует ли пользователь с указанной почтой.
func (s *Storage) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.UserExistsByEmail"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// GetUserBySessionID возвращает пользователя по токену сессии.
// Если токен никому не принадлежит, возвращает models.ErrUserNotFound.
func (s *Storage) GetUserBySessionID(ctx context.Context, sessionID string) (*models.User, error) {
	const op = "storage.GetUserBySessionID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, avatar_url, session_id, created_at
			  FROM users WHERE session_id = $1`
	row := s.DB.QueryRowContext(ctx, query, sessionID)

	var result models.User
	err := row.Scan(&result.ID, &result.Name, &result.Email, &result.AvatarURL,
		&result.SessionID, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ===== MEAL METHODS =====

// CreateMeal вставляет новую запись о приёме пищи.
func (s *Storage) CreateMeal(ctx context.Context, meal models.Meal) error {
	const op = "storage.CreateMeal"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO meals (id, user_id, name, description, date_time, on_diet)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.DB.ExecContext(ctx, query,
		meal.ID, meal.UserID, meal.Name, meal.Description, meal.DateTime, meal.OnDiet)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetMeal возвращает запись по её ID или nil, если записи нет.
// Отсутствие записи не является ошибкой: контракт API отдаёт null.
func (s *Storage) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	const op = "storage.GetMeal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, description, date_time, on_diet, created_at
			  FROM meals WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Meal
	err := row.Scan(&result.ID, &result.UserID, &result.Name, &result.Description,
		&result.DateTime, &result.OnDiet, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListMeals возвращает все записи пользователя без гарантий порядка.
func (s *Storage) ListMeals(ctx context.Context, userID string) ([]*models.Meal, error) {
	const op = "storage.ListMeals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, description, date_time, on_diet, created_at
			  FROM meals
			  WHERE user_id = $1`
	return s.queryMeals(ctx, op, query, userID)
}

// ListMealsOrdered возвращает записи пользователя, упорядоченные по date_time.
// Вторичные ключи created_at и id делают порядок устойчивым при равных date_time,
// что гарантирует воспроизводимость подсчёта метрик.
func (s *Storage) ListMealsOrdered(ctx context.Context, userID string) ([]*models.Meal, error) {
	const op = "storage.ListMealsOrdered"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, description, date_time, on_diet, created_at
			  FROM meals
			  WHERE user_id = $1
			  ORDER BY date_time, created_at, id`
	return s.queryMeals(ctx, op, query, userID)
}

func (s *Storage) queryMeals(ctx context.Context, op, query string, args ...any) ([]*models.Meal, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Meal
	for rows.Next() {
		var item models.Meal
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Description,
			&item.DateTime, &item.OnDiet, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMeal обновляет изменяемые поля записи по её ID и возвращает количество
// изменённых строк. Обновление несуществующей записи — тихий no-op (0 строк).
func (s *Storage) UpdateMeal(ctx context.Context, id string, meal models.Meal) (int, error) {
	const op = "storage.UpdateMeal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE meals
			  SET name = $1, description = $2, date_time = $3, on_diet = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		meal.Name, meal.Description, meal.DateTime, meal.OnDiet, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteMeal удаляет запись по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteMeal(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteMeal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM meals WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
