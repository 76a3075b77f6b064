// Package subscribe реализует HTTP-обработчик оформления подписки.
//
// Handler принимает JSON-запрос с тарифом, валидирует его, извлекает
// пользователя из контекста и вызывает контроллер жизненного цикла.
// Для онлайн-тарифов в ответе платежная ссылка шлюза, для walk-in
// инструкция оплатить на стойке.
package subscribe

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nanaosei/campusfit-backend/internal/http/middlewarectx"
	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// Service описывает интерфейс контроллера жизненного цикла подписки.
type Service interface {
	Create(ctx context.Context, user *models.User, req models.SubscribeRequest) (*subscription.CreateResult, error)
}

// Handler управляет HTTP-запросами на оформление подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Оформить подписку
// @Description Создает подписку в статусе pending и инициализирует платеж в шлюзе для онлайн-тарифов.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.SubscribeRequest true "Выбранный тариф"
// @Success 201 {object} response.Response "Подписка создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Тариф другого типа пользователя"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 409 {object} response.ErrorResponse "Активная подписка уже есть"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Сбой платежного шлюза"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/subscribe [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.subscribe"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.Create(r.Context(), user, req)
	var gatewayErr *paystack.GatewayError
	switch {
	case errors.Is(err, subscription.ErrPlanNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("subscription plan not found"))
		return
	case errors.Is(err, subscription.ErrPlanMismatch):
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("plan is not available for your user type"))
		return
	case errors.Is(err, subscription.ErrAlreadyActive):
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("you already have an active subscription"))
		return
	case errors.As(err, &gatewayErr):
		log.Error("payment gateway failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("payment gateway is unavailable, please try again"))
		return
	case err != nil:
		log.Error("failed to create subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create subscription"))
		return
	}

	log.Info("subscription created", slog.String("reference", result.Reference))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("subscription created", result))
}
