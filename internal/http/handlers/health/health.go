// Package health реализует проверку готовности сервиса: опрашивает
// хранилище документов и кэш токенов.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
)

// Pinger описывает зависимость, умеющую отвечать на проверку доступности.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает GET /health.
type Handler struct {
	log     *slog.Logger
	storage Pinger
	cache   Pinger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, storage, cache Pinger) *Handler {
	return &Handler{log: log, storage: storage, cache: cache}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	status := map[string]string{"status": "ok", "storage": "up", "cache": "up"}
	healthy := true

	if err := h.storage.Ping(r.Context()); err != nil {
		h.log.Error("storage is down", sl.Op(op), sl.Err(err))
		status["storage"] = "down"
		healthy = false
	}
	if err := h.cache.Ping(r.Context()); err != nil {
		h.log.Error("cache is down", sl.Op(op), sl.Err(err))
		status["cache"] = "down"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	render.JSON(w, r, status)
}
