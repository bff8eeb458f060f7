// Package list реализует HTTP-обработчик просмотра профиля пользователя.
//
// Единственный параметр email читается из строки запроса. Отсутствие
// и неверная форма проверяются именно в этом порядке: отсутствующий
// и одновременно некорректный email всегда отражается как отсутствующий.
// Неизвестный email — доменный неуспех с кодом 200.
package list

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
	"github.com/magabrotheeeer/user-account-service/internal/models"
	"github.com/magabrotheeeer/user-account-service/internal/storage"
)

// Request — входные параметры просмотра.
type Request struct {
	Email string `validate:"required"`
}

// Service описывает операцию просмотра бизнес-уровня.
type Service interface {
	List(ctx context.Context, email string) (*models.UserProfile, error)
}

// Handler обрабатывает GET /list/user.
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
	const op = "handlers.user.list"

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

	profile, err := h.service.List(r.Context(), req.Email)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		log.Info("user not found", slog.String("email", req.Email))
		render.JSON(w, r, response.UserNotFound{User: response.ValueUserNotFound})
	case err != nil:
		log.Error("failed to list user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.StorageException())
	default:
		var lastlogin any = response.MarkerNeverLoggedIn
		if profile.LastLogins != nil {
			formatted := make([]string, 0, len(profile.LastLogins))
			for _, at := range profile.LastLogins {
				formatted = append(formatted, at.Format(response.TimeLayout))
			}
			lastlogin = formatted
		}
		log.Info("user listed", slog.String("email", req.Email))
		render.JSON(w, r, response.Profile{
			Username:  profile.Username,
			Email:     profile.Email,
			LastLogin: lastlogin,
		})
	}
}
