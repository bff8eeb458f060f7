package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			url:  "/login/user?email=alice@x.com&password=Passw0rd",
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@x.com", "Passw0rd").Return("A1B2C3", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"user login successful","token":"A1B2C3"}`,
		},
		{
			name:           "отсутствует password",
			url:            "/login/user?email=alice@x.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"one of the mandatory parameter is missing ( email, password )"}`,
		},
		{
			name:           "некорректный email",
			url:            "/login/user?email=alice.x.com&password=Passw0rd",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"bad value to the parameter email"}`,
		},
		{
			// Форма пароля при входе не проверяется, решает сравнение дайджестов.
			name: "короткий пароль доходит до сервиса",
			url:  "/login/user?email=alice@x.com&password=short",
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@x.com", "short").
					Return("", storage.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"user login failed"}`,
		},
		{
			name: "несовпадение учетных данных",
			url:  "/login/user?email=alice@x.com&password=WrongPass1",
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@x.com", "WrongPass1").
					Return("", storage.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"user login failed"}`,
		},
		{
			name: "недоступность хранилища",
			url:  "/login/user?email=alice@x.com&password=Passw0rd",
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice@x.com", "Passw0rd").
					Return("", errors.New("server selection timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"exception":"Some issue with MongoDB Connectivity"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
