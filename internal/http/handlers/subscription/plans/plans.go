// Package plans реализует HTTP-обработчик справочника тарифов.
// Без параметров возвращаются все тарифы, с параметром user_type
// только тарифы для указанного типа пользователя.
package plans

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// Service описывает интерфейс бизнес-логики справочника тарифов.
type Service interface {
	ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error)
	ListPlansByUserType(ctx context.Context, userType string) ([]*models.SubscriptionPlan, error)
}

// Handler управляет HTTP-запросами на получение тарифов.
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
// @Summary Список тарифов
// @Description Возвращает тарифы абонементов, опционально отфильтрованные по типу пользователя.
// @Tags Subscriptions
// @Produce  json
// @Param userType path string false "Тип пользователя: student, staff или public"
// @Param user_type query string false "Тип пользователя: student, staff или public"
// @Success 200 {object} response.Response "Список тарифов"
// @Failure 400 {object} response.ErrorResponse "Неизвестный тип пользователя"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/plans/{userType} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.plans"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userType := chi.URLParam(r, "userType")
	if userType == "" {
		userType = r.URL.Query().Get("user_type")
	}

	var (
		plans []*models.SubscriptionPlan
		err   error
	)
	if userType != "" {
		plans, err = h.service.ListPlansByUserType(r.Context(), userType)
	} else {
		plans, err = h.service.ListPlans(r.Context())
	}

	if errors.Is(err, subscription.ErrUnknownUserType) {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown user type"))
		return
	}
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list plans"))
		return
	}

	log.Info("plans listed", slog.Int("count", len(plans)))
	render.JSON(w, r, response.OKWithData("plans fetched", plans))
}
