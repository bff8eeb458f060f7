// Package session реализует HTTP-обработчик проверки статуса сессии.
//
// По email сообщает, есть ли в кэше активный токен. Недоступность кэша
// неотличима от отсутствия токена: проверка отвечает "не в системе".
package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/lib/validate"
)

// Request — входные параметры проверки сессии.
type Request struct {
	Email string `validate:"required"`
}

// Service описывает операцию проверки сессии бизнес-уровня.
type Service interface {
	IsLoggedIn(ctx context.Context, email string) bool
}

// Handler обрабатывает GET /login/user.
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
	const op = "handlers.user.session"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{Email: r.URL.Query().Get("email")}
	if err := h.validate.Struct(req); err != nil {
		log.Error("missing mandatory parameter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgEmailParamMissing))
		return
	}
	if !validate.Email(req.Email) {
		log.Error("bad email value", slog.String("email", req.Email))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Msg(response.MsgBadEmailValue))
		return
	}

	if h.service.IsLoggedIn(r.Context(), req.Email) {
		log.Info("session active", slog.String("email", req.Email))
		render.JSON(w, r, response.Msg(req.Email+" is logged in"))
		return
	}
	log.Info("no active session", slog.String("email", req.Email))
	render.JSON(w, r, response.Msg(req.Email+" is not logged in"))
}
