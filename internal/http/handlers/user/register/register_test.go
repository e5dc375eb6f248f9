package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/daily-diet/internal/lib/session"
	"github.com/magabrotheeeer/daily-diet/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.DummyUser, sessionToken string) error {
	return m.Called(ctx, req, sessionToken).Error(0)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := models.DummyUser{
		Name:      "Alice",
		Email:     "alice@example.com",
		AvatarURL: "https://example.com/alice.png",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		cookie         *http.Cookie
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name:        "успешная регистрация выпускает cookie",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validBody, mock.AnythingOfType("string")).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectCookie:   true,
		},
		{
			name:        "существующая cookie переиспользуется",
			requestBody: validBody,
			cookie:      &http.Cookie{Name: session.CookieName, Value: "existing-token"},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validBody, "existing-token").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectCookie:   false,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "некорректная почта",
			requestBody: models.DummyUser{
				Name:      "Alice",
				Email:     "not-an-email",
				AvatarURL: "https://example.com/alice.png",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name:           "пустое тело запроса",
			requestBody:    models.DummyUser{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:        "почта уже занята",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validBody, mock.AnythingOfType("string")).
					Return(models.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"the user already exists"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, validBody, mock.AnythingOfType("string")).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService, 7*24*time.Hour)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/users", &body)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
					"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			}

			cookies := w.Result().Cookies()
			if tt.expectCookie {
				assert.Len(t, cookies, 1)
				assert.Equal(t, session.CookieName, cookies[0].Name)
				assert.Equal(t, "/", cookies[0].Path)
			} else {
				assert.Empty(t, cookies)
			}

			mockService.AssertExpectations(t)
		})
	}
}
