package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/daily-diet/internal/lib/session"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
		expectNext     bool
		expectedToken  string
	}{
		{
			name:           "валидная cookie пропускает запрос дальше",
			cookie:         &http.Cookie{Name: session.CookieName, Value: "token-123"},
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedToken:  "token-123",
		},
		{
			name:           "отсутствует cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name:           "cookie с другим именем",
			cookie:         &http.Cookie{Name: "other", Value: "token-123"},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotToken, _ = r.Context().Value(SessionToken).(string)
			})

			req := httptest.NewRequest(http.MethodGet, "/meals", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			SessionMiddleware(newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, tt.expectedToken, gotToken)
			}
		})
	}
}
