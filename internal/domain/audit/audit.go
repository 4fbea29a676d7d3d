package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"hrpulse/internal/platform/db"
)

// Actions recorded by the service. Kept as constants so the trail can be
// filtered without guessing free-form strings.
const (
	ActionLogin           = "auth.login"
	ActionSubmitEval      = "evaluation.submit"
	ActionWarningEscalate = "evaluation.warning.escalate"
)

type Service struct {
	DB db.Querier
}

func NewService(database db.Querier) *Service {
	return &Service{DB: database}
}

type Event struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	RequestID  string
	IP         string
	Detail     any
}

// Record writes an audit event. Failures are logged and swallowed; an audit
// write must never fail the request that triggered it.
func (s *Service) Record(ctx context.Context, ev Event) {
	var detail []byte
	if ev.Detail != nil {
		var err error
		detail, err = json.Marshal(ev.Detail)
		if err != nil {
			slog.Warn("audit detail marshal failed", "action", ev.Action, "error", err)
			detail = nil
		}
	}
	if detail == nil {
		detail = []byte("{}")
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (actor_id, action, entity_type, entity_id, request_id, ip, detail)
    VALUES (NULLIF($1, ''), $2, $3, NULLIF($4, ''), $5, $6, $7)
  `, ev.ActorID, ev.Action, ev.EntityType, ev.EntityID, ev.RequestID, ev.IP, detail)
	if err != nil {
		slog.Warn("audit insert failed", "action", ev.Action, "error", err)
	}
}
