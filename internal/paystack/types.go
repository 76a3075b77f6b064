package paystack

import "encoding/json"

// InitializeRequest — запрос создания транзакции.
// Сумма передаётся в минорных единицах (песевах).
type InitializeRequest struct {
	Amount      int            `json:"amount"`
	Email       string         `json:"email"`
	Reference   string         `json:"reference"`
	Currency    string         `json:"currency"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// InitializeData — полезная нагрузка успешного ответа инициализации.
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"` // Страница оплаты для пользователя
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyData — полезная нагрузка ответа проверки транзакции.
type VerifyData struct {
	Status          string         `json:"status"` // success, failed, abandoned
	Reference       string         `json:"reference"`
	Amount          int            `json:"amount"` // В минорных единицах
	Currency        string         `json:"currency"`
	PaidAt          string         `json:"paid_at"`
	GatewayResponse string         `json:"gateway_response"`
	Channel         string         `json:"channel"`
	Metadata        map[string]any `json:"metadata"`
}

// envelope — общий конверт ответов шлюза.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// WebhookEvent — событие, доставляемое шлюзом на webhook.
// Полезная нагрузка charge.success совпадает по форме с VerifyData.
type WebhookEvent struct {
	Event string     `json:"event"`
	Data  VerifyData `json:"data"`
}

// GatewayError — ошибка вызова платёжного шлюза: сетевой сбой
// или неуспешный конверт ответа. Автоматических повторов нет,
// повтор — ответственность вызывающей стороны.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return "paystack: " + e.Message
}
