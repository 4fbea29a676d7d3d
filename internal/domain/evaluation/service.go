package evaluation

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// SubmitResult reports what a submission persisted. Warning fields are empty
// when the escalation rule did not fire; they are never exposed to the
// submitting caller.
type SubmitResult struct {
	EvaluationID string
	WeekStart    time.Time
	WarningID    string
	Severity     string
}

// Submit persists a weekly evaluation and applies the escalation rule. The
// three store operations run sequentially without a wrapping transaction;
// the (employee, week_start) uniqueness constraint is the only guard against
// concurrent duplicates.
func (s *Service) Submit(ctx context.Context, employeeID string, overallScore float64) (SubmitResult, error) {
	weekStart := WeekStart(s.now())

	evaluationID, err := s.store.CreateEvaluation(ctx, employeeID, weekStart, overallScore)
	if err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{EvaluationID: evaluationID, WeekStart: weekStart}

	// The just-inserted row is the newest, so it participates in the window.
	scores, err := s.store.RecentScores(ctx, employeeID, EscalationWindow)
	if err != nil {
		return SubmitResult{}, err
	}

	severity, escalate := EscalationSeverity(scores)
	if !escalate {
		return result, nil
	}

	warningID, err := s.store.CreateWarning(ctx, employeeID, severity, StatusActive)
	if err != nil {
		return SubmitResult{}, err
	}
	result.WarningID = warningID
	result.Severity = severity
	return result, nil
}

func (s *Service) ActiveWarnings(ctx context.Context) ([]RiskEntry, error) {
	return s.store.ListActiveWarnings(ctx)
}
