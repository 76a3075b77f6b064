// Package notifier публикует доменные события в RabbitMQ.
// Ленты админ-панели потребляют их асинхронно; публикация
// best-effort, без повторов и очереди недоставленных.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

// RoutingKeyActivated — ключ маршрутизации события активации подписки.
const RoutingKeyActivated = "subscription.activated"

// Channel — минимальный контракт канала AMQP для публикации.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Service публикует события активации подписок.
type Service struct {
	ch       Channel
	exchange string
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(ch Channel, exchange string, log *slog.Logger) *Service {
	return &Service{
		ch:       ch,
		exchange: exchange,
		log:      log,
	}
}

// ActivatedEvent — полезная нагрузка события активации.
type ActivatedEvent struct {
	SubscriptionID int        `json:"subscription_id"`
	UserUID        string     `json:"user_uid"`
	PlanID         int        `json:"plan_id"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// SubscriptionActivated публикует событие активации подписки.
func (s *Service) SubscriptionActivated(sub *models.UserSubscription) error {
	const op = "notifier.SubscriptionActivated"

	event := ActivatedEvent{
		SubscriptionID: sub.ID,
		UserUID:        sub.UserUID,
		PlanID:         sub.PlanID,
		Amount:         sub.Amount,
		Currency:       sub.Currency,
		EndDate:        sub.EndDate,
		OccurredAt:     time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.ch.Publish(
		s.exchange,
		RoutingKeyActivated,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("published activation event", slog.Int("subscription_id", sub.ID))
	return nil
}

// Noop — заглушка Notifier для окружений без брокера.
type Noop struct{}

// SubscriptionActivated ничего не делает.
func (Noop) SubscriptionActivated(_ *models.UserSubscription) error { return nil }
