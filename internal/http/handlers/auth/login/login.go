// Package login реализует HTTP-обработчик входа. Запрос полиморфный:
// публичные пользователи передают email и пароль, университетские
// передают university_id и PIN.
package login

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

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (*auth.AuthResult, error)
}

// Допустимые формы учетных данных для специализированных маршрутов.
const (
	modeAny        = ""
	modePublic     = "public"
	modeUniversity = "university"
)

// Handler управляет HTTP-запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	mode     string
}

// New создает новый Handler, принимающий обе формы учетных данных.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		mode:     modeAny,
	}
}

// NewPublic создает Handler, принимающий только email и пароль.
func NewPublic(log *slog.Logger, service Service) *Handler {
	h := New(log, service)
	h.mode = modePublic
	return h
}

// NewUniversity создает Handler, принимающий только университетский ID и PIN.
func NewUniversity(log *slog.Logger, service Service) *Handler {
	h := New(log, service)
	h.mode = modeUniversity
	return h
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Аутентифицирует по email и паролю либо по университетскому ID и PIN. Возвращает JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.LoginRequest true "Учетные данные"
// @Success 200 {object} response.Response "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
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

	switch h.mode {
	case modePublic:
		if req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("email and password are required"))
			return
		}
		req.UniversityID, req.PIN = "", ""
	case modeUniversity:
		if req.UniversityID == "" || req.PIN == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("university_id and pin are required"))
			return
		}
		req.Email, req.Password = "", ""
	}

	result, err := h.service.Login(r.Context(), req)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info("login rejected")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}
	if err != nil {
		log.Error("failed to login", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login"))
		return
	}

	log.Info("user logged in")
	render.JSON(w, r, response.OKWithData("login successful", result))
}
