// Package registeruniversity реализует HTTP-обработчик регистрации студента
// или сотрудника университета по справочному ID и PIN-коду.
package registeruniversity

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
	RegisterUniversity(ctx context.Context, req models.RegisterUniversityRequest) (*auth.AuthResult, error)
}

// Handler управляет HTTP-запросами на регистрацию университетских пользователей.
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
// @Summary Регистрация университетского пользователя
// @Description Создает учетную запись по университетскому ID и PIN. Профиль копируется из справочника.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.RegisterUniversityRequest true "Данные регистрации"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Запись в справочнике истекла"
// @Failure 404 {object} response.ErrorResponse "ID отсутствует в справочнике"
// @Failure 409 {object} response.ErrorResponse "ID уже зарегистрирован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/register/university [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.registeruniversity"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterUniversityRequest
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

	result, err := h.service.RegisterUniversity(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrAlreadyRegistered):
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("university id already registered"))
		return
	case errors.Is(err, auth.ErrDirectoryNotFound):
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("university id not found in directory"))
		return
	case errors.Is(err, auth.ErrRecordExpired):
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("your university record has expired, please contact the registrar"))
		return
	case err != nil:
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("registered university user")
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("registration successful", result))
}
