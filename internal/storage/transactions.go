package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

// CreateTransaction вставляет запись платёжной транзакции и возвращает её ID.
func (s *Storage) CreateTransaction(ctx context.Context, tx models.PaymentTransaction) (int, error) {
	const op = "storage.CreateTransaction"

	query := `INSERT INTO payment_transactions (reference, subscription_id, user_uid,
			      amount, currency, status, method, gateway_response, paid_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		tx.Reference, tx.SubscriptionID, tx.UserUID, tx.Amount, tx.Currency,
		tx.Status, tx.Method, tx.GatewayResponse, tx.PaidAt).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateTransaction обновляет статус транзакции по ссылке платежа,
// сохраняя сырой ответ шлюза и время оплаты.
func (s *Storage) UpdateTransaction(ctx context.Context, ref, status string, gatewayResponse json.RawMessage, paidAt *time.Time) error {
	const op = "storage.UpdateTransaction"

	query := `UPDATE payment_transactions
			  SET status = $2, gateway_response = COALESCE($3, gateway_response), paid_at = COALESCE($4, paid_at)
			  WHERE reference = $1`
	if _, err := s.DB.ExecContext(ctx, query, ref, status, gatewayResponse, paidAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetTransactionByReference возвращает транзакцию по ссылке платежа.
func (s *Storage) GetTransactionByReference(ctx context.Context, ref string) (*models.PaymentTransaction, error) {
	const op = "storage.GetTransactionByReference"

	query := `SELECT id, reference, subscription_id, user_uid, amount, currency,
			      status, method, gateway_response, paid_at, created_at
			  FROM payment_transactions WHERE reference = $1`
	row := s.DB.QueryRowContext(ctx, query, ref)

	var tx models.PaymentTransaction
	err := row.Scan(&tx.ID, &tx.Reference, &tx.SubscriptionID, &tx.UserUID,
		&tx.Amount, &tx.Currency, &tx.Status, &tx.Method,
		&tx.GatewayResponse, &tx.PaidAt, &tx.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tx, nil
}
