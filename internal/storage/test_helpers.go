package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя
func (f *TestDataFactory) CreateUser(t *testing.T, id, name, email, avatarURL, sessionID string) {
	_, err := f.storage.DB.Exec(`INSERT INTO users (id, name, email, avatar_url, session_id)
		VALUES ($1, $2, $3, $4, $5)`,
		id, name, email, avatarURL, sessionID)
	require.NoError(t, err)
}

// CreateMeal создает тестовую запись о приёме пищи
func (f *TestDataFactory) CreateMeal(t *testing.T, id, userID, name, description, dateTime string, onDiet bool) {
	_, err := f.storage.DB.Exec(`INSERT INTO meals (id, user_id, name, description, date_time, on_diet)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		id, userID, name, description, dateTime, onDiet)
	require.NoError(t, err)
}

// CreateMealAt создает тестовую запись с явным created_at
// для проверки устойчивости порядка при равных date_time.
func (f *TestDataFactory) CreateMealAt(t *testing.T, id, userID, name, dateTime string, onDiet bool, createdAt time.Time) {
	_, err := f.storage.DB.Exec(`INSERT INTO meals (id, user_id, name, description, date_time, on_diet, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, name, "", dateTime, onDiet, createdAt)
	require.NoError(t, err)
}

// TestUserData содержит стандартные тестовые данные пользователя
type TestUserData struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	SessionID string
}

// GetTestUserData возвращает стандартные тестовые данные пользователя
func GetTestUserData() TestUserData {
	return TestUserData{
		ID:        uuid.New().String(),
		Name:      "testuser",
		Email:     "test@example.com",
		AvatarURL: "https://example.com/avatar.png",
		SessionID: uuid.New().String(),
	}
}
