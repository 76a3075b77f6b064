// Package verify реализует HTTP-обработчик ручной проверки оплаты по
// ссылке платежа. Повторный запрос по активной подписке идемпотентен.
package verify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nanaosei/campusfit-backend/internal/http/middlewarectx"
	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// Service описывает интерфейс контроллера жизненного цикла подписки.
type Service interface {
	Verify(ctx context.Context, ref, callerRole string) (*models.UserSubscription, error)
}

// Handler управляет HTTP-запросами на проверку оплаты.
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
// @Summary Проверить оплату
// @Description Сверяет платеж со шлюзом и активирует подписку. Токен не обязателен, walk-in тарифы активирует только администратор с токеном.
// @Tags Subscriptions
// @Produce  json
// @Param reference path string true "Ссылка платежа"
// @Success 200 {object} response.Response "Состояние подписки"
// @Failure 400 {object} response.ErrorResponse "Сумма платежа не совпадает с тарифом"
// @Failure 402 {object} response.ErrorResponse "Платеж не прошел"
// @Failure 403 {object} response.ErrorResponse "Walk-in активация доступна только администратору"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 502 {object} response.ErrorResponse "Сбой платежного шлюза"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/verify-payment/{reference} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.verify"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ref := chi.URLParam(r, "reference")
	if ref == "" {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("payment reference is required"))
		return
	}

	// Шлюз возвращает пользователя сюда без токена, поэтому роль опциональна.
	var callerRole string
	if user, ok := middlewarectx.UserFromContext(r.Context()); ok {
		callerRole = user.Role
	}

	sub, err := h.service.Verify(r.Context(), ref, callerRole)
	var gatewayErr *paystack.GatewayError
	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscription not found"))
		return
	case errors.Is(err, subscription.ErrWalkInNotAllowed):
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("walk-in activation requires admin role"))
		return
	case errors.Is(err, subscription.ErrPaymentFailed):
		w.WriteHeader(http.StatusPaymentRequired)
		render.JSON(w, r, response.Error("payment was not successful"))
		return
	case errors.Is(err, subscription.ErrAmountMismatch):
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("paid amount does not match plan price"))
		return
	case errors.As(err, &gatewayErr):
		log.Error("payment gateway failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("payment gateway is unavailable, please try again"))
		return
	case err != nil:
		log.Error("failed to verify payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not verify payment"))
		return
	}

	log.Info("payment verified", slog.String("reference", ref),
		slog.String("status", sub.Status))
	render.JSON(w, r, response.OKWithData("payment verified", sub))
}
