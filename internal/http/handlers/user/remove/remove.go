// Package remove реализует HTTP-обработчик удаления пользователя.
//
// Удаляется запись, у которой совпали и username, и email; вместе с ней
// по возможности удаляется журнал входов. Отсутствие совпадения —
// доменный неуспех с кодом 200.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/lib/validate"
	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// Request — входные параметры удаления.
type Request struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
}

// Service описывает операцию удаления бизнес-уровня.
type Service interface {
	Delete(ctx context.Context, username, email string) error
}

// Handler обрабатывает DELETE /delete/user.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{
		Username: r.URL.Query().Get("username"),
		Email:    r.URL.Query().Get("email"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("missing mandatory parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgMissingEmailUser))
		return
	}
	if !validate.Email(req.Email) {
		log.Error("bad email value", slog.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgBadEmailValue))
		return
	}

	err := h.service.Delete(r.Context(), req.Username, req.Email)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		log.Info("user not deleted", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusUserDeleteFailed))
	case err != nil:
		log.Error("failed to delete user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.StorageException())
	default:
		log.Info("user deleted", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusUserDeleted))
	}
}
