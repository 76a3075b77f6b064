// Package webhook реализует HTTP-обработчик событий платежного шлюза.
//
// Подлинность события подтверждается подписью HMAC-SHA512 из заголовка
// x-paystack-signature, посчитанной по сырому телу запроса. События без
// валидной подписи отклоняются до разбора JSON.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// SignatureHeader — заголовок с подписью события.
const SignatureHeader = "x-paystack-signature"

// Service описывает интерфейс контроллера жизненного цикла подписки.
type Service interface {
	ProcessWebhook(ctx context.Context, event *paystack.WebhookEvent) error
}

// Validator проверяет подпись сырого тела события.
type Validator interface {
	ValidateSignature(body []byte, signature string) bool
}

// Handler управляет HTTP-запросами от платежного шлюза.
type Handler struct {
	log       *slog.Logger
	service   Service
	validator Validator
}

// New создает новый Handler с переданными логгером, сервисом и валидатором подписи.
func New(log *slog.Logger, service Service, validator Validator) *Handler {
	return &Handler{
		log:       log,
		service:   service,
		validator: validator,
	}
}

// ServeHTTP godoc
// @Summary Webhook платежного шлюза
// @Description Принимает события Paystack. Повторная доставка по активной подписке подтверждается без изменений.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param x-paystack-signature header string true "Подпись HMAC-SHA512 тела запроса"
// @Success 200 {object} response.Response "Событие обработано"
// @Failure 400 {object} response.ErrorResponse "Некорректное событие"
// @Failure 401 {object} response.ErrorResponse "Неверная подпись"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/webhook/paystack [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.webhook"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	signature := r.Header.Get(SignatureHeader)
	if signature == "" || !h.validator.ValidateSignature(body, signature) {
		log.Error("invalid webhook signature")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid signature"))
		return
	}

	var event paystack.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Error("failed to decode webhook event", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid event payload"))
		return
	}

	err = h.service.ProcessWebhook(r.Context(), &event)
	switch {
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscription not found"))
		return
	case errors.Is(err, subscription.ErrAmountMismatch):
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("paid amount does not match plan price"))
		return
	case err != nil:
		log.Error("failed to process webhook", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not process event"))
		return
	}

	log.Info("webhook processed", slog.String("event", event.Event))
	render.JSON(w, r, response.OK("event processed"))
}
