package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-account-service/internal/models"
	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, email string) (*models.UserProfile, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "профиль с историей входов",
			url:  "/list/user?email=alice@x.com",
			setupMock: func(m *MockService) {
				profile := &models.UserProfile{
					Username: "alice",
					Email:    "alice@x.com",
					LastLogins: []time.Time{
						time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
					},
				}
				m.On("List", mock.Anything, "alice@x.com").Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"lastlogin":["2025-03-14 09:26:53"]`,
		},
		{
			name: "профиль без единого входа",
			url:  "/list/user?email=alice@x.com",
			setupMock: func(m *MockService) {
				profile := &models.UserProfile{Username: "alice", Email: "alice@x.com"}
				m.On("List", mock.Anything, "alice@x.com").Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"lastlogin":"user has not logged in"`,
		},
		{
			name:           "отсутствует email",
			url:            "/list/user",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"parameter email missing"}`,
		},
		{
			name:           "некорректный email",
			url:            "/list/user?email=alice.x.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"bad value to the parameter email"}`,
		},
		{
			name: "неизвестный пользователь",
			url:  "/list/user?email=ghost@x.com",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "ghost@x.com").
					Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"user":"user not found"}`,
		},
		{
			name: "недоступность хранилища",
			url:  "/list/user?email=alice@x.com",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "alice@x.com").
					Return(nil, errors.New("server selection timeout"))
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

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
