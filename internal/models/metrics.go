package models

// Metrics содержит агрегированную статистику соблюдения диеты пользователем.
// Имена JSON-полей закреплены контрактом API.
type Metrics struct {
	TotalMealsQuantity        int `json:"totalMealsQuantity"`        // Всего приёмов пищи
	MealsOnDietQuantity       int `json:"mealsOnDietQuantity"`       // Из них в рамках диеты
	MealsOffDietQuantity      int `json:"mealsOffDietQuantity"`      // Из них вне диеты
	BestSequenceOfMealsOnDiet int `json:"bestSequenceOfMealsOnDiet"` // Лучшая непрерывная серия в рамках диеты
}
