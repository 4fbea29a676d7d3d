package evaluationhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/auth"
	"hrpulse/internal/domain/evaluation"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
)

type Evaluator interface {
	Submit(ctx context.Context, employeeID string, overallScore float64) (evaluation.SubmitResult, error)
}

// RelationshipSource answers whether a manager directly manages an employee.
type RelationshipSource interface {
	IsManagerOf(ctx context.Context, employeeID, managerID string) (bool, error)
}

type Handler struct {
	Evaluations Evaluator
	Employees   RelationshipSource
	Audit       *audit.Service
}

func NewHandler(evaluations Evaluator, employees RelationshipSource, auditSvc *audit.Service) *Handler {
	return &Handler{Evaluations: evaluations, Employees: employees, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(auth.EvaluatorRoles...)).
		Post("/evaluations", h.HandleSubmit)
}

type submitRequest struct {
	EmployeeID   string   `json:"employee_id"`
	OverallScore *float64 `json:"overall_score"`
}

// HandleSubmit records a weekly evaluation for an employee. The role gate ran
// already; this handler validates the payload and then applies the
// relationship gate, so a supervisor probing with garbage input learns about
// the input, not about who reports to whom.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	caller, ok := middleware.GetEmployee(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload submitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.EmployeeID = strings.TrimSpace(payload.EmployeeID)
	if payload.EmployeeID == "" || payload.OverallScore == nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee_id and overall_score are required", reqID)
		return
	}
	score := *payload.OverallScore
	if score < evaluation.MinScore || score > evaluation.MaxScore {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "overall_score must be between 0 and 5", reqID)
		return
	}

	allowed, err := h.canEvaluate(r.Context(), caller, payload.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_failed", "failed to verify relationship", reqID)
		return
	}
	if !allowed {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", reqID)
		return
	}

	result, err := h.Evaluations.Submit(r.Context(), payload.EmployeeID, score)
	if err != nil {
		if errors.Is(err, evaluation.ErrDuplicateWeek) {
			slog.Warn("duplicate weekly evaluation",
				"employeeId", payload.EmployeeID,
				"evaluatorId", caller.EmployeeID,
				"requestId", reqID,
			)
			api.Fail(w, http.StatusInternalServerError, "insert_failed", "failed to record evaluation", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "insert_failed", "failed to record evaluation", reqID)
		return
	}

	if h.Audit != nil {
		h.Audit.Record(r.Context(), audit.Event{
			ActorID:    caller.EmployeeID,
			Action:     audit.ActionSubmitEval,
			EntityType: "weekly_evaluation",
			EntityID:   result.EvaluationID,
			RequestID:  reqID,
			IP:         r.RemoteAddr,
			Detail:     map[string]any{"employeeId": payload.EmployeeID, "weekStart": result.WeekStart},
		})
		if result.WarningID != "" {
			h.Audit.Record(r.Context(), audit.Event{
				ActorID:    caller.EmployeeID,
				Action:     audit.ActionWarningEscalate,
				EntityType: "warning_letter",
				EntityID:   result.WarningID,
				RequestID:  reqID,
				IP:         r.RemoteAddr,
				Detail:     map[string]any{"employeeId": payload.EmployeeID, "severity": result.Severity},
			})
		}
	}

	// The response deliberately carries no warning information; escalation is
	// visible only through the analytics endpoints.
	api.Success(w, nil, reqID)
}

func (h *Handler) canEvaluate(ctx context.Context, caller auth.EmployeeContext, targetID string) (bool, error) {
	switch caller.Role {
	case auth.RoleAdmin, auth.RoleHR:
		return true, nil
	case auth.RoleSupervisor:
		return h.Employees.IsManagerOf(ctx, targetID, caller.EmployeeID)
	default:
		return false, nil
	}
}
