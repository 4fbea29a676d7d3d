package evaluation

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"

	StatusActive   = "active"
	StatusResolved = "resolved"
	StatusRevoked  = "revoked"
)

const (
	// LowScoreThreshold marks an evaluation as a low score when the overall
	// score is at or below it.
	LowScoreThreshold = 2.5

	// EscalationWindow is how many of the most recent evaluations the
	// escalation rule inspects.
	EscalationWindow = 3

	MinScore = 0.0
	MaxScore = 5.0
)
