package models

// Виды тарифов по способу оплаты. Walk-in оплачивается на стойке,
// остальные — через платёжный шлюз.
const (
	PlanKindWalkIn = "walk-in"
	PlanKindOnline = "online"
)

// SubscriptionPlan — справочный тариф абонемента. Данные только для чтения
// с точки зрения контроллера жизненного цикла подписки.
type SubscriptionPlan struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	UserType     string  `json:"user_type"`     // student, staff или public
	Price        float64 `json:"price"`         // Цена в основной денежной единице (GHS)
	DurationDays int     `json:"duration_days"` // Срок действия в днях
	DurationKind string  `json:"duration_kind"` // walk-in или online
}

// IsWalkIn сообщает, оплачивается ли тариф на стойке без участия шлюза.
func (p SubscriptionPlan) IsWalkIn() bool {
	return p.DurationKind == PlanKindWalkIn
}
