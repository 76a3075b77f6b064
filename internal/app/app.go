// Package app собирает приложение: хранилище, миграции, кэш, брокер,
// платежный шлюз, сервисы и HTTP-сервер с graceful shutdown.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/nanaosei/campusfit-backend/internal/cache"
	"github.com/nanaosei/campusfit-backend/internal/config"
	"github.com/nanaosei/campusfit-backend/internal/lib/jwt"
	"github.com/nanaosei/campusfit-backend/internal/lib/sl"
	"github.com/nanaosei/campusfit-backend/internal/migrations"
	"github.com/nanaosei/campusfit-backend/internal/paystack"
	"github.com/nanaosei/campusfit-backend/internal/rabbitmq"
	authservice "github.com/nanaosei/campusfit-backend/internal/services/auth"
	"github.com/nanaosei/campusfit-backend/internal/services/notifier"
	subservice "github.com/nanaosei/campusfit-backend/internal/services/subscription"
	"github.com/nanaosei/campusfit-backend/internal/storage"
)

// AdminFeedQueue — очередь ленты админ-панели с событиями активации.
const AdminFeedQueue = "campusfit.admin-feed"

// App инкапсулирует HTTP-сервер и внешние соединения приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создает приложение и подключает все внешние зависимости.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var activationNotifier subservice.Notifier = notifier.Noop{}
	if cfg.RabbitConnection.AMQPURL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitConnection.AMQPURL, 5, 2*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitConnection.Exchange, []rabbitmq.QueueConfig{
			{QueueName: AdminFeedQueue, RoutingKey: notifier.RoutingKeyActivated},
		})
		if err != nil {
			return nil, err
		}
		activationNotifier = notifier.New(ch, cfg.RabbitConnection.Exchange, logger)
	} else {
		logger.Warn("amqp url is empty, activation events will not be published")
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL,
		cfg.JWTToken.Issuer, cfg.JWTToken.Audience)
	authService := authservice.New(db, jwtMaker, logger)

	paystackClient := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey)
	subscriptionService := subservice.New(db, paystackClient, cacheRedis, activationNotifier,
		subservice.Config{
			Currency:    cfg.Paystack.Currency,
			CallbackURL: cfg.Paystack.CallbackURL,
		}, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, subscriptionService, paystackClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		return err
	}
}
