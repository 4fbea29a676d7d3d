package evaluation

import (
	"context"
	"time"

	"hrpulse/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(database db.Querier) *Store {
	return &Store{DB: database}
}

func (s *Store) CreateEvaluation(ctx context.Context, employeeID string, weekStart time.Time, overallScore float64) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO weekly_evaluations (employee_id, week_start, overall_score)
    VALUES ($1, $2, $3)
    RETURNING id
  `, employeeID, weekStart, overallScore).Scan(&id)
	if err != nil {
		return "", translatePgError(err)
	}
	return id, nil
}

// RecentScores returns up to limit overall scores for the employee ordered
// newest first, so a row inserted in the same request is included.
func (s *Store) RecentScores(ctx context.Context, employeeID string, limit int) ([]float64, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT overall_score
    FROM weekly_evaluations
    WHERE employee_id = $1
    ORDER BY created_at DESC
    LIMIT $2
  `, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (s *Store) CreateWarning(ctx context.Context, employeeID, severity, status string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO warning_letters (employee_id, severity, status)
    VALUES ($1, $2, $3)
    RETURNING id
  `, employeeID, severity, status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListActiveWarnings(ctx context.Context) ([]RiskEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, severity
    FROM warning_letters
    WHERE status = $1
    ORDER BY created_at DESC
  `, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RiskEntry
	for rows.Next() {
		var entry RiskEntry
		if err := rows.Scan(&entry.EmployeeID, &entry.Severity); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
