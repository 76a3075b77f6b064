// Package lookupid реализует HTTP-обработчик проверки университетского ID
// по справочнику перед регистрацией. Операция без побочных эффектов.
package lookupid

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nanaosei/campusfit-backend/internal/http/response"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/models"
	"github.com/nanaosei/campusfit-backend/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики проверки ID.
type Service interface {
	LookupUniversityID(ctx context.Context, universityID string) (*auth.LookupResult, error)
}

// Handler управляет HTTP-запросами на проверку университетского ID.
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
// @Summary Проверка университетского ID
// @Description Ищет восьмизначный ID в справочнике университета. Для истекших записей данные не раскрываются.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.LookupUniversityIDRequest true "Университетский ID"
// @Success 200 {object} response.Response "Результат поиска, включая found=false"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/lookup/university-id [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.lookupid"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LookupUniversityIDRequest
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

	result, err := h.service.LookupUniversityID(r.Context(), req.UniversityID)
	if err != nil {
		log.Error("failed to lookup university id", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not lookup university id"))
		return
	}

	// Отсутствие записи не ошибка: клиент различает исходы по полю found
	log.Info("university id lookup completed",
		slog.Bool("found", result.Found), slog.Bool("is_expired", result.IsExpired))
	render.JSON(w, r, response.OKWithData(lookupMessage(result), result))
}

func lookupMessage(result *auth.LookupResult) string {
	if result.Message != "" {
		return result.Message
	}
	return "university id found"
}
