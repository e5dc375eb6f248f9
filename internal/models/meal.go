package models

import "time"

// Meal представляет собой запись о приёме пищи, привязанную к пользователю.
// Поле DateTime хранится и возвращается строкой как есть: формат должен быть
// монотонно сортируемым лексикографически, чтобы порядок совпадал с хронологическим.
type Meal struct {
	ID          string    `json:"id"`          // Уникальный идентификатор записи
	UserID      string    `json:"user_id"`     // Идентификатор владельца
	Name        string    `json:"name"`        // Название приёма пищи
	Description string    `json:"description"` // Свободное описание
	DateTime    string    `json:"date_time"`   // Дата и время приёма пищи (строка)
	OnDiet      bool      `json:"on_diet"`     // Входит ли приём пищи в диету
	CreatedAt   time.Time `json:"created_at"`  // Дата создания записи
}

// DummyMeal используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Meal. OnDiet — указатель,
// чтобы отличать отсутствие поля от явного false.
type DummyMeal struct {
	Name        string `json:"name" validate:"required"`        // Название приёма пищи
	Description string `json:"description" validate:"required"` // Описание
	DateTime    string `json:"date_time" validate:"required"`   // Дата и время строкой
	OnDiet      *bool  `json:"on_diet" validate:"required"`     // Флаг диеты
}
