package evaluation

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	evaluations   []WeeklyEvaluation
	recentScores  []float64
	recentLimit   int
	warnings      []WarningLetter
	createEvalErr error
	recentErr     error
	warningErr    error
}

func (f *fakeStore) CreateEvaluation(_ context.Context, employeeID string, weekStart time.Time, overallScore float64) (string, error) {
	if f.createEvalErr != nil {
		return "", f.createEvalErr
	}
	f.evaluations = append(f.evaluations, WeeklyEvaluation{
		ID:           "eval-1",
		EmployeeID:   employeeID,
		WeekStart:    weekStart,
		OverallScore: overallScore,
	})
	return "eval-1", nil
}

func (f *fakeStore) RecentScores(_ context.Context, _ string, limit int) ([]float64, error) {
	f.recentLimit = limit
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recentScores, nil
}

func (f *fakeStore) CreateWarning(_ context.Context, employeeID, severity, status string) (string, error) {
	if f.warningErr != nil {
		return "", f.warningErr
	}
	f.warnings = append(f.warnings, WarningLetter{
		ID:         "warn-1",
		EmployeeID: employeeID,
		Severity:   severity,
		Status:     status,
	})
	return "warn-1", nil
}

func (f *fakeStore) ListActiveWarnings(context.Context) ([]RiskEntry, error) {
	var entries []RiskEntry
	for _, warning := range f.warnings {
		if warning.Status == StatusActive {
			entries = append(entries, RiskEntry{EmployeeID: warning.EmployeeID, Severity: warning.Severity})
		}
	}
	return entries, nil
}

func newTestService(store *fakeStore, now time.Time) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSubmitPersistsServerDerivedWeekStart(t *testing.T) {
	store := &fakeStore{recentScores: []float64{4.2}}
	// Thursday afternoon; the slot must still be Monday 00:00 UTC.
	svc := newTestService(store, time.Date(2026, 8, 27, 16, 45, 0, 0, time.UTC))

	result, err := svc.Submit(context.Background(), "emp-1", 4.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantWeek := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !result.WeekStart.Equal(wantWeek) {
		t.Fatalf("expected week start %v, got %v", wantWeek, result.WeekStart)
	}
	if len(store.evaluations) != 1 || !store.evaluations[0].WeekStart.Equal(wantWeek) {
		t.Fatalf("unexpected persisted evaluations: %+v", store.evaluations)
	}
	if store.recentLimit != EscalationWindow {
		t.Fatalf("expected recent-score window of %d, got %d", EscalationWindow, store.recentLimit)
	}
}

func TestSubmitEscalatesTwoLowScoresToHigh(t *testing.T) {
	// History oldest-to-newest was [2.0, 2.0, 4.0]; the store returns the
	// latest three newest first, including the row just inserted.
	store := &fakeStore{recentScores: []float64{4.0, 2.0, 2.0}}
	svc := newTestService(store, time.Now())

	result, err := svc.Submit(context.Background(), "emp-1", 4.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Severity != SeverityHigh {
		t.Fatalf("expected high severity, got %q", result.Severity)
	}
	if len(store.warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(store.warnings))
	}
	if store.warnings[0].Status != StatusActive || store.warnings[0].Severity != SeverityHigh {
		t.Fatalf("unexpected warning: %+v", store.warnings[0])
	}
}

func TestSubmitEscalatesThreeLowScoresToCritical(t *testing.T) {
	store := &fakeStore{recentScores: []float64{1.0, 1.0, 1.0}}
	svc := newTestService(store, time.Now())

	result, err := svc.Submit(context.Background(), "emp-1", 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Severity != SeverityCritical {
		t.Fatalf("expected critical severity, got %q", result.Severity)
	}
}

func TestSubmitSingleLowScoreDoesNotEscalate(t *testing.T) {
	store := &fakeStore{recentScores: []float64{1.0, 4.0, 4.0}}
	svc := newTestService(store, time.Now())

	result, err := svc.Submit(context.Background(), "emp-1", 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Severity != "" || result.WarningID != "" {
		t.Fatalf("expected no escalation, got %+v", result)
	}
	if len(store.warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(store.warnings))
	}
}

func TestSubmitPropagatesDuplicateWeek(t *testing.T) {
	store := &fakeStore{createEvalErr: ErrDuplicateWeek}
	svc := newTestService(store, time.Now())

	_, err := svc.Submit(context.Background(), "emp-1", 3.0)
	if !errors.Is(err, ErrDuplicateWeek) {
		t.Fatalf("expected ErrDuplicateWeek, got %v", err)
	}
	if len(store.warnings) != 0 {
		t.Fatal("no warning may be created when the insert fails")
	}
}

func TestSubmitSurfacesRecentScoreFailure(t *testing.T) {
	store := &fakeStore{recentErr: errors.New("connection reset")}
	svc := newTestService(store, time.Now())

	if _, err := svc.Submit(context.Background(), "emp-1", 3.0); err == nil {
		t.Fatal("expected query error to surface")
	}
	if len(store.warnings) != 0 {
		t.Fatal("no warning may be created when the history read fails")
	}
}

func TestActiveWarningsExcludesResolvedAndRevoked(t *testing.T) {
	store := &fakeStore{warnings: []WarningLetter{
		{EmployeeID: "emp-1", Severity: SeverityHigh, Status: StatusActive},
		{EmployeeID: "emp-2", Severity: SeverityCritical, Status: StatusResolved},
		{EmployeeID: "emp-3", Severity: SeverityHigh, Status: StatusRevoked},
	}}
	svc := newTestService(store, time.Now())

	entries, err := svc.ActiveWarnings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EmployeeID != "emp-1" {
		t.Fatalf("expected only the active warning, got %+v", entries)
	}
}
