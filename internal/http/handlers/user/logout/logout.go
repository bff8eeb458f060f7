// Package logout реализует HTTP-обработчик завершения сессии.
//
// По email удаляет токен из кэша. Три исхода — токен удалён, удалить
// не удалось, токена не было — различаются текстом сообщения, код
// во всех трёх случаях 200.
package logout

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
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// Request — входные параметры выхода.
type Request struct {
	Email string `validate:"required"`
}

// Service описывает операцию выхода бизнес-уровня.
type Service interface {
	Logout(ctx context.Context, email string) userservice.LogoutResult
}

// Handler обрабатывает GET /logout/user.
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
	const op = "handlers.user.logout"

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

	switch h.service.Logout(r.Context(), req.Email) {
	case userservice.LogoutDone:
		log.Info("session closed", slog.String("email", req.Email))
		render.JSON(w, r, response.Msg(req.Email+" logged out"))
	case userservice.LogoutFailed:
		log.Error("failed to close session", slog.String("email", req.Email))
		render.JSON(w, r, response.Msg(req.Email+" failed to logged out"))
	case userservice.LogoutNotLoggedIn:
		log.Info("no active session", slog.String("email", req.Email))
		render.JSON(w, r, response.Msg(req.Email+" not logged in. Hence cannot log out"))
	}
}
