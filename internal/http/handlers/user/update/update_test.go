package update

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

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, username, email, password string) error {
	args := m.Called(ctx, username, email, password)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная смена пароля",
			url:  "/update/user?username=alice&email=alice@x.com&password=NewPass1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "alice", "alice@x.com", "NewPass1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"user profile updated successfully"}`,
		},
		{
			name:           "отсутствует username",
			url:            "/update/user?email=alice@x.com&password=NewPass1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"one of the mandatory parameter is missing ( username, email, password )"}`,
		},
		{
			name:           "некорректный email",
			url:            "/update/user?username=alice&email=alice.x.com&password=NewPass1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"bad value to the parameter email"}`,
		},
		{
			name:           "слишком короткий новый пароль",
			url:            "/update/user?username=alice&email=alice@x.com&password=short1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"bad value to the parameter password"}`,
		},
		{
			name: "пара username и email не найдена",
			url:  "/update/user?username=bob&email=alice@x.com&password=NewPass1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "bob", "alice@x.com", "NewPass1").
					Return(storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"user profile update failed"}`,
		},
		{
			name: "недоступность хранилища",
			url:  "/update/user?username=alice&email=alice@x.com&password=NewPass1",
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "alice", "alice@x.com", "NewPass1").
					Return(errors.New("server selection timeout"))
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

			req := httptest.NewRequest(http.MethodPut, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
