// Package create реализует HTTP-обработчик регистрации пользователя.
//
// Параметры username, email и password читаются из строки запроса
// и проверяются в фиксированном порядке: наличие всех обязательных
// параметров, затем форма email, затем форма пароля. Первый неуспех
// прерывает обработку с кодом 400. Занятый email — доменный неуспех,
// он возвращается с кодом 200 и описывающим телом.
package create

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

// Request — входные параметры регистрации.
type Request struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Service описывает операцию регистрации бизнес-уровня.
type Service interface {
	Create(ctx context.Context, username, email, password string) error
}

// Handler обрабатывает POST /create/user.
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
	const op = "handlers.user.create"

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

	err := h.service.Create(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrUserExists):
		log.Info("email already registered", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusEmailTaken))
	case err != nil:
		log.Error("failed to create user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.StorageException())
	default:
		log.Info("user created", slog.String("email", req.Email))
		render.JSON(w, r, response.StatusOnly(response.StatusUserAdded))
	}
}
