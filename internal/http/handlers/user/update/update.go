// Package update реализует HTTP-обработчик смены пароля пользователя.
//
// Порядок проверок совпадает с регистрацией: наличие username, email
// и password, затем форма email, затем форма пароля. Пароль, прошедший
// проверку, хэшируется и заменяет дайджест записи, у которой совпали
// и username, и email; отсутствие такой записи — доменный неуспех
// с кодом 200.
package update

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

// Request — входные параметры смены пароля.
type Request struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Service описывает операцию смены пароля бизнес-уровня.
type Service interface {
	Update(ctx context.Context, username, email, password string) error
}

// Handler обрабатывает PUT /update/user.
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
	const op = "handlers.user.update"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{
		Username: r.URL.Query().Get("username"),
		Email:    r.URL.Query().Get("email"),
		Password: r.URL.Query().Get("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("missing mandatory parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgMissingUserEmailPass))
		return
	}
	if !validate.Email(req.Email) {
		log.Error("bad email value", slog.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgBadEmailValue))
		return
	}
	if !validate.Password(req.Password) {
		log.Error("bad password value")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgBadPasswordValue))
		return
	}

	err := h.service.Update(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		log.Info("profile not updated", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusUserUpdateFailed))
	case err != nil:
		log.Error("failed to update user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.StorageException())
	default:
		log.Info("profile updated", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusUserUpdated))
	}
}
