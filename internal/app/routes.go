// Package app предоставляет маршруты приложения.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/login"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/logout"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/lookupid"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/profile"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/registerpublic"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/auth/registeruniversity"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/active"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/list"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/plans"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/subscribe"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/verify"
	"github.com/nanaosei/campusfit-backend/internal/http/handlers/subscription/webhook"
	"github.com/nanaosei/campusfit-backend/internal/http/middlewarectx"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	authservice "github.com/nanaosei/campusfit-backend/internal/services/auth"
	subservice "github.com/nanaosei/campusfit-backend/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, subscriptionService *subservice.Service, paystackClient *paystack.Client) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register/public", registerpublic.New(logger, authService).ServeHTTP)
		r.Post("/auth/lookup/university-id", lookupid.New(logger, authService).ServeHTTP)
		r.Post("/auth/register/university", registeruniversity.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Post("/auth/login/public", login.NewPublic(logger, authService).ServeHTTP)
		r.Post("/auth/login/university", login.NewUniversity(logger, authService).ServeHTTP)
		r.Get("/subscriptions/plans", plans.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions/plans/{userType}", plans.New(logger, subscriptionService).ServeHTTP)

		// Сюда шлюз возвращает пользователя после оплаты, токен опционален
		r.With(middlewarectx.OptionalJWTMiddleware(authService, logger)).
			Post("/subscriptions/verify-payment/{reference}", verify.New(logger, subscriptionService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/auth/profile", profile.New(logger).ServeHTTP)
			r.Post("/auth/logout", logout.New(logger).ServeHTTP)
			r.Post("/subscriptions/subscribe", subscribe.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/my-subscriptions", list.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/my-active-subscription", active.New(logger, subscriptionService).ServeHTTP)
		})

		// Webhook endpoint (без аутентификации, подпись проверяется в обработчике)
		r.Post("/subscriptions/webhook/paystack", webhook.New(logger, subscriptionService, paystackClient).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
