// Package login реализует HTTP-обработчик входа пользователя.
//
// Параметры email и password читаются из строки запроса. Проверяется
// наличие обоих и форма email; форма пароля на входе не проверяется —
// любой непустой пароль хэшируется и сравнивается с хранимым дайджестом.
// Несовпадение учётных данных — доменный неуспех с кодом 200; токен
// выдаётся только при успехе.
package login

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

// Request — входные параметры входа.
type Request struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Service описывает операцию входа бизнес-уровня.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает POST /login/user.
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
	const op = "handlers.user.login"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{
		Email:    r.URL.Query().Get("email"),
		Password: r.URL.Query().Get("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("missing mandatory parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgMissingEmailPass))
		return
	}
	if !validate.Email(req.Email) {
		log.Error("bad email value", slog.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgBadEmailValue))
		return
	}

	tok, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrInvalidCredentials):
		log.Info("login failed", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusLoginFailed))
	case err != nil:
		log.Error("failed to login user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.StorageException())
	default:
		log.Info("login successful", slog.String("email", req.Email))
		render.JSON(w, r, response.Status{
			Status: response.StatusLoginSuccessful,
			Token:  tok,
		})
	}
}
