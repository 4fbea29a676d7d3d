package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrpulse/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(database db.Querier) *Store {
	return &Store{DB: database}
}

func (s *Store) CredentialsByEmail(ctx context.Context, email string) (Credentials, error) {
	var out Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT id, role, password_hash
    FROM employees
    WHERE email = $1
  `, email).Scan(&out.ID, &out.Role, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, err
	}
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	var out Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, full_name, role, COALESCE(manager_id::text, '')
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&out.ID, &out.Email, &out.FullName, &out.Role, &out.ManagerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (s *Store) IsManagerOf(ctx context.Context, employeeID, managerID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees
    WHERE id = $1 AND manager_id = $2
  `, employeeID, managerID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
