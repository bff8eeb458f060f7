// Package mongodb реализует хранилище данных на основе MongoDB
// для управления учётными записями и журналом входов. Предоставляет методы
// создания, чтения, обновления и удаления записей пользователей.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	databaseName        = "userdatabase"
	usersCollection     = "users"
	userLoginCollection = "userlogin"
)

// Storage инкапсулирует клиент MongoDB и коллекции пользователей
// и журнала входов.
type Storage struct {
	client  *mongo.Client
	users   *mongo.Collection
	history *mongo.Collection
}

// New подключается к MongoDB и создаёт уникальный индекс по email.
// Индекс гарантирует не более одной записи на адрес: гонка двух
// одновременных созданий разрешается атомарностью одной записи.
func New(ctx context.Context, uri string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(databaseName)
	s := &Storage{
		client:  client,
		users:   db.Collection(usersCollection),
		history: db.Collection(userLoginCollection),
	}

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err = s.users.Indexes().CreateOne(ctx, index); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Ping проверяет доступность хранилища.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close закрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
