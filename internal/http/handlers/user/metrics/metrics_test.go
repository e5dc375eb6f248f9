package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// MockService реализует интерфейс metrics.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Metrics(ctx context.Context, userID string) (models.Metrics, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Metrics), args.Error(1)
}

func TestMetricsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	userID := "3f2a6f0e-9b1c-4a8d-b6f3-1c2d3e4f5a6b"

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный подсчёт метрик",
			id:   userID,
			setupMock: func(m *MockService) {
				m.On("Metrics", mock.Anything, userID).Return(models.Metrics{
					TotalMealsQuantity:        6,
					MealsOnDietQuantity:       4,
					MealsOffDietQuantity:      2,
					BestSequenceOfMealsOnDiet: 3,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"metrics":{"totalMealsQuantity":6,"mealsOnDietQuantity":4,"mealsOffDietQuantity":2,"bestSequenceOfMealsOnDiet":3}`,
		},
		{
			name: "пользователь без записей",
			id:   userID,
			setupMock: func(m *MockService) {
				m.On("Metrics", mock.Anything, userID).Return(models.Metrics{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bestSequenceOfMealsOnDiet":0`,
		},
		{
			name:           "некорректный UUID в URL",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name: "ошибка сервиса",
			id:   userID,
			setupMock: func(m *MockService) {
				m.On("Metrics", mock.Anything, userID).
					Return(models.Metrics{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not count metrics"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.id+"/metrics", nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
