// Package registerpublic реализует HTTP-обработчик регистрации публичного
// пользователя по email и паролю.
//
// Handler принимает JSON-запрос, валидирует его, вызывает бизнес-логику
// регистрации и возвращает профиль пользователя вместе с JWT.
package registerpublic

import (
	"context"
	"encoding/json"
	"errors"
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

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	RegisterPublic(ctx context.Context, req models.RegisterPublicRequest) (*auth.AuthResult, error)
}

// Handler управляет HTTP-запросами на регистрацию публичных пользователей.
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
// @Summary Регистрация публичного пользователя
// @Description Создает учетную запись по email и паролю и возвращает JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.RegisterPublicRequest true "Данные регистрации"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Email уже зарегистрирован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/register/public [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.registerpublic"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterPublicRequest
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

	result, err := h.service.RegisterPublic(r.Context(), req)
	if errors.Is(err, auth.ErrEmailTaken) {
		log.Info("email already registered", slog.String("email", req.Email))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("email already registered"))
		return
	}
	if err != nil {
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("registered public user")
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("registration successful", result))
}
