package models

import "time"

// Статусы подписки. Active и cancelled — терминальные состояния.
const (
	SubscriptionStatusPending   = "pending"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

// Статусы оплаты — параллельное подсостояние подписки.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// UserSubscription — изменяемая сущность жизненного цикла абонемента.
// Создаётся в состоянии pending, переходит в active (с проставленными
// датами начала и окончания) либо в cancelled с paymentStatus = failed.
// У пользователя может быть не более одной активной подписки.
type UserSubscription struct {
	ID               int        `json:"id"`
	UserUID          string     `json:"user_uid"`
	PlanID           int        `json:"plan_id"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReference string     `json:"payment_reference"` // Уникальная ссылка платежа
	Amount           float64    `json:"amount"`            // Сумма в основной единице
	Currency         string     `json:"currency"`
	AutoRenew        bool       `json:"auto_renew"`
	StartDate        *time.Time `json:"start_date,omitempty"` // Проставляется при активации
	EndDate          *time.Time `json:"end_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
