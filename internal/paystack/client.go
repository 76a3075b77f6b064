// Package paystack — адаптер платёжного шлюза Paystack: инициализация
// и проверка транзакций, валидация подписи webhook.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client — клиент API Paystack. Все настройки передаются явно
// при создании, глобального состояния нет.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Paystack.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		secretKey:  secretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.baseURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &GatewayError{Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if !env.Status {
		return &GatewayError{Message: env.Message}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &GatewayError{Message: fmt.Sprintf("malformed response data: %v", err)}
	}
	return nil
}

// Initialize отправляет запрос на создание транзакции и возвращает
// ссылку на страницу оплаты с кодом доступа.
func (c *Client) Initialize(ctx context.Context, reqParams InitializeRequest) (*InitializeData, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/transaction/initialize", reqParams)
	if err != nil {
		return nil, err
	}
	var data InitializeData
	if err := c.do(req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Verify запрашивает статус транзакции по ссылке платежа.
func (c *Client) Verify(ctx context.Context, ref string) (*VerifyData, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/transaction/verify/"+ref, nil)
	if err != nil {
		return nil, err
	}
	var data VerifyData
	if err := c.do(req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ValidateSignature проверяет подпись webhook: HMAC-SHA512 от сырого тела
// с секретным ключом, hex-кодирование, заголовок x-paystack-signature.
// Сравнение устойчиво к атакам по времени.
func (c *Client) ValidateSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
