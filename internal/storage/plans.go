package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

const planColumns = `id, name, user_type, price, duration_days, duration_kind`

// GetPlan возвращает тариф по ID.
func (s *Storage) GetPlan(ctx context.Context, id int) (*models.SubscriptionPlan, error) {
	const op = "storage.GetPlan"

	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var p models.SubscriptionPlan
	err := row.Scan(&p.ID, &p.Name, &p.UserType, &p.Price, &p.DurationDays, &p.DurationKind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListPlans возвращает весь справочник тарифов.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	const op = "storage.ListPlans"

	query := `SELECT ` + planColumns + ` FROM subscription_plans ORDER BY id`
	return s.queryPlans(ctx, op, query)
}

// ListPlansByUserType возвращает тарифы для заданного типа пользователя.
func (s *Storage) ListPlansByUserType(ctx context.Context, userType string) ([]*models.SubscriptionPlan, error) {
	const op = "storage.ListPlansByUserType"

	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE user_type = $1 ORDER BY id`
	return s.queryPlans(ctx, op, query, userType)
}

func (s *Storage) queryPlans(ctx context.Context, op, query string, args ...any) ([]*models.SubscriptionPlan, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var plans []*models.SubscriptionPlan
	for rows.Next() {
		var p models.SubscriptionPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.UserType, &p.Price, &p.DurationDays, &p.DurationKind); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return plans, nil
}
