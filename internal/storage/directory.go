package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nanaosei/campusfit-backend/internal/models"
)

// GetDirectoryEntry возвращает запись университетского справочника по ID.
// Справочник только для чтения, методов записи нет.
func (s *Storage) GetDirectoryEntry(ctx context.Context, universityID string) (*models.UniversityDirectoryEntry, error) {
	const op = "storage.GetDirectoryEntry"

	query := `SELECT university_id, full_name, email, phone, role, status, expiry_date
			  FROM university_directory WHERE university_id = $1`
	row := s.DB.QueryRowContext(ctx, query, universityID)

	var e models.UniversityDirectoryEntry
	err := row.Scan(&e.UniversityID, &e.FullName, &e.Email, &e.Phone,
		&e.Role, &e.Status, &e.ExpiryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
