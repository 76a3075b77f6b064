// Package active реализует HTTP-обработчик получения активной подписки
// текущего пользователя.
package active

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nanaosei/campusfit-backend/internal/http/middlewarectx"
	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// Service описывает интерфейс бизнес-логики активной подписки.
type Service interface {
	ActiveByUser(ctx context.Context, userUID string) (*models.UserSubscription, error)
}

// Handler управляет HTTP-запросами на получение активной подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Активная подписка пользователя
// @Description Возвращает действующую подписку либо 404, если её нет.
// @Tags Subscriptions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Активная подписка"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Активная подписка отсутствует"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/my-active-subscription [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.active"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	sub, err := h.service.ActiveByUser(r.Context(), user.UID)
	if errors.Is(err, subscription.ErrSubscriptionNotFound) {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("no active subscription"))
		return
	}
	if err != nil {
		log.Error("failed to get active subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get active subscription"))
		return
	}

	render.JSON(w, r, response.OKWithData("active subscription fetched", sub))
}
