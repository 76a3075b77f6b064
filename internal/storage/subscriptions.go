package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

const subscriptionColumns = `id, user_uid, plan_id, status, payment_status,
			payment_reference, amount, currency, auto_renew, start_date, end_date, created_at`

func scanSubscription(row *sql.Row) (*models.UserSubscription, error) {
	var sub models.UserSubscription
	err := row.Scan(&sub.ID, &sub.UserUID, &sub.PlanID, &sub.Status, &sub.PaymentStatus,
		&sub.PaymentReference, &sub.Amount, &sub.Currency, &sub.AutoRenew,
		&sub.StartDate, &sub.EndDate, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubscription вставляет новую подписку в состоянии pending
// и возвращает её ID. Колонка payment_reference уникальна: коллизия
// сгенерированной ссылки проявится ошибкой вставки.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.UserSubscription) (int, error) {
	const op = "storage.CreateSubscription"

	query := `INSERT INTO user_subscriptions (user_uid, plan_id, status, payment_status,
			      payment_reference, amount, currency, auto_renew)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		sub.UserUID, sub.PlanID, sub.Status, sub.PaymentStatus,
		sub.PaymentReference, sub.Amount, sub.Currency, sub.AutoRenew).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSubscriptionByReference возвращает подписку по ссылке платежа.
func (s *Storage) GetSubscriptionByReference(ctx context.Context, ref string) (*models.UserSubscription, error) {
	const op = "storage.GetSubscriptionByReference"

	query := `SELECT ` + subscriptionColumns + ` FROM user_subscriptions WHERE payment_reference = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, ref))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// GetActiveSubscriptionByUserUID возвращает активную подписку пользователя
// либо ErrNotFound, если её нет.
func (s *Storage) GetActiveSubscriptionByUserUID(ctx context.Context, userUID string) (*models.UserSubscription, error) {
	const op = "storage.GetActiveSubscriptionByUserUID"

	query := `SELECT ` + subscriptionColumns + ` FROM user_subscriptions
			  WHERE user_uid = $1 AND status = 'active'
			  ORDER BY created_at DESC LIMIT 1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, userUID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ListSubscriptionsByUserUID возвращает все подписки пользователя,
// новые первыми.
func (s *Storage) ListSubscriptionsByUserUID(ctx context.Context, userUID string) ([]*models.UserSubscription, error) {
	const op = "storage.ListSubscriptionsByUserUID"

	query := `SELECT ` + subscriptionColumns + ` FROM user_subscriptions
			  WHERE user_uid = $1 ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var subs []*models.UserSubscription
	for rows.Next() {
		var sub models.UserSubscription
		if err := rows.Scan(&sub.ID, &sub.UserUID, &sub.PlanID, &sub.Status, &sub.PaymentStatus,
			&sub.PaymentReference, &sub.Amount, &sub.Currency, &sub.AutoRenew,
			&sub.StartDate, &sub.EndDate, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// ActivateSubscription переводит подписку из pending в active, проставляя
// даты начала и окончания. Условное обновление закрывает гонку между
// ручной проверкой и webhook: выигрывает только один переход.
// Возвращает false, если подписка уже не в состоянии pending.
func (s *Storage) ActivateSubscription(ctx context.Context, id int, start, end time.Time) (bool, error) {
	const op = "storage.ActivateSubscription"

	query := `UPDATE user_subscriptions
			  SET status = 'active', payment_status = 'success', start_date = $2, end_date = $3
			  WHERE id = $1 AND status = 'pending'`
	result, err := s.DB.ExecContext(ctx, query, id, start, end)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected == 1, nil
}

// CancelSubscription переводит подписку в cancelled с payment_status = failed.
// Вызывается после известного сбоя шлюза, чтобы запись не осталась
// неоднозначно висеть в pending.
func (s *Storage) CancelSubscription(ctx context.Context, id int) error {
	const op = "storage.CancelSubscription"

	query := `UPDATE user_subscriptions
			  SET status = 'cancelled', payment_status = 'failed'
			  WHERE id = $1 AND status = 'pending'`
	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetSubscriptionByID возвращает подписку по её ID.
func (s *Storage) GetSubscriptionByID(ctx context.Context, id int) (*models.UserSubscription, error) {
	const op = "storage.GetSubscriptionByID"

	query := `SELECT ` + subscriptionColumns + ` FROM user_subscriptions WHERE id = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}
