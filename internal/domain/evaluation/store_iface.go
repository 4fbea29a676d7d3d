package evaluation

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateEvaluation(ctx context.Context, employeeID string, weekStart time.Time, overallScore float64) (string, error)
	RecentScores(ctx context.Context, employeeID string, limit int) ([]float64, error)
	CreateWarning(ctx context.Context, employeeID, severity, status string) (string, error)
	ListActiveWarnings(ctx context.Context) ([]RiskEntry, error)
}
