// Package user содержит бизнес-логику операций над учётными записями:
// создание, просмотр, обновление, удаление, вход и выход. Сервис
// оркестрирует хранилище документов и кэш токенов сессий; зависимости
// передаются интерфейсами и создаются один раз при старте процесса.
package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/user-account-service/internal/lib/password"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/lib/token"
	"github.com/magabrotheeeer/user-account-service/internal/models"
	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// Repository описывает контракт хранилища документов для записей
// пользователей и журнала входов.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, email, passwordHash string) error
	DeleteUser(ctx context.Context, username, email string) error
	DeleteLoginHistory(ctx context.Context, email string) error
	GetLoginHistory(ctx context.Context, email string) (*models.LoginHistory, error)
	AppendLogin(ctx context.Context, email string, at time.Time) error
}

// SessionCache описывает контракт кэша токенов сессий.
type SessionCache interface {
	SetToken(ctx context.Context, email, token string) error
	HasToken(ctx context.Context, email string) bool
	ClearToken(ctx context.Context, email string) bool
}

// LogoutResult описывает исход операции выхода.
type LogoutResult int

const (
	// LogoutDone — токен существовал и был удалён.
	LogoutDone LogoutResult = iota
	// LogoutFailed — токен существовал, но удалить его не удалось.
	LogoutFailed
	// LogoutNotLoggedIn — токена не было, завершать нечего.
	LogoutNotLoggedIn
)

// Service реализует операции над учётными записями.
type Service struct {
	repo  Repository
	cache SessionCache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache SessionCache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// Create регистрирует нового пользователя, сохраняя дайджест пароля
// вместо исходного значения.
func (s *Service) Create(ctx context.Context, username, email, rawPassword string) error {
	return s.repo.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password.Digest(rawPassword),
	})
}

// List возвращает профиль пользователя вместе с журналом входов.
// Отсутствие журнала не является ошибкой: LastLogins остаётся nil.
func (s *Service) List(ctx context.Context, email string) (*models.UserProfile, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	profile := &models.UserProfile{Username: u.Username, Email: u.Email}

	history, err := s.repo.GetLoginHistory(ctx, email)
	if errors.Is(err, storage.ErrHistoryNotFound) {
		return profile, nil
	}
	if err != nil {
		return nil, err
	}
	profile.LastLogins = history.LastLogin
	return profile, nil
}

// Login проверяет учётные данные и при успехе дописывает отметку входа
// в журнал, выпускает новый токен и кладёт его в кэш. Записи в журнал
// и в кэш выполняются последовательно и не атомарны: сбой между ними
// не компенсируется.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	if _, err := s.repo.FindByCredentials(ctx, email, password.Digest(rawPassword)); err != nil {
		return "", err
	}
	if err := s.repo.AppendLogin(ctx, email, time.Now()); err != nil {
		return "", err
	}
	tok := token.New()
	if err := s.cache.SetToken(ctx, email, tok); err != nil {
		return "", err
	}
	return tok, nil
}

// IsLoggedIn сообщает, есть ли активная сессия для email.
func (s *Service) IsLoggedIn(ctx context.Context, email string) bool {
	return s.cache.HasToken(ctx, email)
}

// Logout завершает сессию для email.
func (s *Service) Logout(ctx context.Context, email string) LogoutResult {
	if !s.cache.HasToken(ctx, email) {
		return LogoutNotLoggedIn
	}
	if !s.cache.ClearToken(ctx, email) {
		return LogoutFailed
	}
	return LogoutDone
}

// Update заменяет дайджест пароля записи, у которой совпали username и email.
func (s *Service) Update(ctx context.Context, username, email, rawPassword string) error {
	return s.repo.UpdatePassword(ctx, username, email, password.Digest(rawPassword))
}

// Delete удаляет запись пользователя, затем его журнал входов. Удаление
// журнала выполняется по возможности: сбой логируется, но не отменяет
// уже состоявшееся удаление пользователя.
func (s *Service) Delete(ctx context.Context, username, email string) error {
	const op = "services.user.Delete"
	if err := s.repo.DeleteUser(ctx, username, email); err != nil {
		return err
	}
	if err := s.repo.DeleteLoginHistory(ctx, email); err != nil {
		s.log.Error("failed to delete login history", sl.Op(op), sl.Err(err))
	}
	return nil
}
