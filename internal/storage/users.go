package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"

	uid := uuid.New().String()
	query := `INSERT INTO users (uid, full_name, email, phone, university_id,
			      secret_hash, user_type, role, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING uid`
	err := s.DB.QueryRowContext(ctx, query,
		uid, user.FullName, user.Email, user.Phone, user.UniversityID,
		user.SecretHash, user.UserType, user.Role, user.IsActive).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

const userColumns = `uid, full_name, email, phone, university_id,
			secret_hash, user_type, role, is_active, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.UID, &u.FullName, &u.Email, &u.Phone, &u.UniversityID,
		&u.SecretHash, &u.UserType, &u.Role, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUID возвращает пользователя по UID.
func (s *Storage) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUserByUID"

	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// GetUserByUniversityID возвращает пользователя по университетскому ID.
func (s *Storage) GetUserByUniversityID(ctx context.Context, universityID string) (*models.User, error) {
	const op = "storage.GetUserByUniversityID"

	query := `SELECT ` + userColumns + ` FROM users WHERE university_id = $1`
	user, err := scanUser(s.DB.QueryRowContext(ctx, query, universityID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
