package models

import (
	"encoding/json"
	"time"
)

// Способы оплаты транзакции.
const (
	PaymentMethodOnline = "online"
	PaymentMethodWalkIn = "walk-in"
)

// PaymentTransaction — журнал платёжной попытки, связанный с подпиской
// общей ссылкой платежа. Хранит статус шлюза и сырой ответ.
type PaymentTransaction struct {
	ID              int             `json:"id"`
	Reference       string          `json:"reference"`
	SubscriptionID  int             `json:"subscription_id"`
	UserUID         string          `json:"user_uid"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"` // pending, success, failed
	Method          string          `json:"method"` // online или walk-in
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
