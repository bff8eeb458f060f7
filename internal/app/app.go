// Package app собирает сервис учётных записей: подключения к хранилищу
// и кэшу создаются один раз при старте и передаются обработчикам через
// сервисный слой; жизненный цикл HTTP-сервера управляется контекстом.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/user-account-service/internal/cache"
	"github.com/magabrotheeeer/user-account-service/internal/config"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
	"github.com/magabrotheeeer/user-account-service/internal/storage/mongodb"
)

// App объединяет HTTP-сервер и внешние подключения сервиса.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *mongodb.Storage
	cache   *cache.Cache
}

// New создаёт подключения к MongoDB и Redis, собирает сервисный слой
// и маршруты, возвращает готовое к запуску приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.MongoConnection.URI())
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.New(ctx, cfg.RedisConnection, logger)
	if err != nil {
		return nil, err
	}

	users := userservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, users, db, cacheRedis)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		storage: db,
		cache:   cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до ошибки сервера или отмены
// контекста; при отмене выполняет плавную остановку и закрывает подключения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.storage.Close(timeoutCtx); cerr != nil {
			a.logger.Error("failed to close storage connection", slog.Any("err", cerr))
		}
		if cerr := a.cache.Close(); cerr != nil {
			a.logger.Error("failed to close cache connection", slog.Any("err", cerr))
		}
		return err
	}
}
