// Package cache реализует хранение сессионных токенов в Redis.
// Ключом служит email пользователя, значением — непрозрачный токен.
// Токен живёт без срока действия до явного выхода или перезаписи
// следующим входом.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/user-account-service/internal/config"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
)

// Cache инкапсулирует клиент Redis для работы с токенами сессий.
type Cache struct {
	db  *redis.Client
	log *slog.Logger
}

// New создаёт клиент Redis и проверяет соединение.
func New(ctx context.Context, cfg config.RedisConnection, log *slog.Logger) (*Cache, error) {
	const op = "cache.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{db: db, log: log}, nil
}

// SetToken безусловно записывает токен для email: последняя запись побеждает,
// срок действия не устанавливается. Ошибка соединения возвращается вызывающему.
func (c *Cache) SetToken(ctx context.Context, email, token string) error {
	const op = "cache.SetToken"
	if err := c.db.Set(ctx, email, token, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// HasToken сообщает, существует ли токен для email. Ошибка соединения
// логируется и трактуется как отсутствие токена.
func (c *Cache) HasToken(ctx context.Context, email string) bool {
	const op = "cache.HasToken"
	n, err := c.db.Exists(ctx, email).Result()
	if err != nil {
		c.log.Error("cache lookup failed", sl.Op(op), sl.Err(err))
		return false
	}
	return n == 1
}

// ClearToken удаляет токен для email и возвращает true, только если токен
// действительно существовал и был удалён. Ошибка соединения логируется
// и трактуется как неуспех удаления.
func (c *Cache) ClearToken(ctx context.Context, email string) bool {
	const op = "cache.ClearToken"
	n, err := c.db.Del(ctx, email).Result()
	if err != nil {
		c.log.Error("cache delete failed", sl.Op(op), sl.Err(err))
		return false
	}
	return n == 1
}

// Ping проверяет доступность Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.db.Ping(ctx).Err()
}

// Close закрывает соединение с Redis.
func (c *Cache) Close() error {
	return c.db.Close()
}
