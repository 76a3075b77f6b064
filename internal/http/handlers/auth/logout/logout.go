// Package logout реализует HTTP-обработчик выхода. Сессии хранятся
// только в JWT, поэтому выход сводится к удалению токена на клиенте.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nanaosei/campusfit-backend/internal/http/response"
)

// Handler управляет HTTP-запросами на выход.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Подтверждает выход. Клиент должен удалить сохраненный токен.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Выход выполнен"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("user logged out")
	render.JSON(w, r, response.OK("logged out, discard your token"))
}
