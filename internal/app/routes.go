// Package app предоставляет маршруты сервиса учётных записей.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/create"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/logout"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/session"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/user/update"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты сервиса.
func RegisterRoutes(r chi.Router, logger *slog.Logger, users *userservice.Service, storagePinger, cachePinger health.Pinger) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Get("/list/user", list.New(logger, users).ServeHTTP)
	r.Post("/create/user", create.New(logger, users).ServeHTTP)
	r.Post("/login/user", login.New(logger, users).ServeHTTP)
	r.Get("/login/user", session.New(logger, users).ServeHTTP)
	r.Get("/logout/user", logout.New(logger, users).ServeHTTP)
	r.Put("/update/user", update.New(logger, users).ServeHTTP)
	r.Delete("/delete/user", remove.New(logger, users).ServeHTTP)

	r.Get("/health", health.New(logger, storagePinger, cachePinger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
