package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/user-account-service/internal/models"
	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// CreateUser сохраняет нового пользователя. Возвращает storage.ErrUserExists,
// если запись с таким email уже есть.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.mongodb.CreateUser"
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.mongodb.GetUserByEmail"
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// FindByCredentials возвращает пользователя, у которого совпали и email,
// и дайджест пароля. Какая именно часть не совпала, вызывающему неразличимо.
func (s *Storage) FindByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	const op = "storage.mongodb.FindByCredentials"
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email, "password": passwordHash}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// UpdatePassword заменяет дайджест пароля записи, у которой совпали
// и username, и email. Если ни одна запись не изменилась (нет совпадения
// или новый дайджест равен старому), возвращает storage.ErrUserNotFound.
func (s *Storage) UpdatePassword(ctx context.Context, username, email, passwordHash string) error {
	const op = "storage.mongodb.UpdatePassword"
	res, err := s.users.UpdateOne(ctx,
		bson.M{"username": username, "email": email},
		bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return nil
}

// DeleteUser удаляет запись, у которой совпали и username, и email.
func (s *Storage) DeleteUser(ctx context.Context, username, email string) error {
	const op = "storage.mongodb.DeleteUser"
	res, err := s.users.DeleteOne(ctx, bson.M{"username": username, "email": email})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return nil
}

// DeleteLoginHistory удаляет журнал входов для email. Отсутствие журнала
// ошибкой не считается.
func (s *Storage) DeleteLoginHistory(ctx context.Context, email string) error {
	const op = "storage.mongodb.DeleteLoginHistory"
	if _, err := s.history.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetLoginHistory возвращает журнал входов для email или
// storage.ErrHistoryNotFound, если пользователь ещё ни разу не входил.
func (s *Storage) GetLoginHistory(ctx context.Context, email string) (*models.LoginHistory, error) {
	const op = "storage.mongodb.GetLoginHistory"
	var h models.LoginHistory
	err := s.history.FindOne(ctx, bson.M{"email": email}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrHistoryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &h, nil
}

// AppendLogin дописывает отметку времени входа в журнал для email.
// Upsert создаёт журнал при первом входе; $push сохраняет порядок вставки,
// совпадающий с хронологическим.
func (s *Storage) AppendLogin(ctx context.Context, email string, at time.Time) error {
	const op = "storage.mongodb.AppendLogin"
	_, err := s.history.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"lastlogin": at}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
