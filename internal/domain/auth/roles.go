package auth

const (
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleSupervisor = "supervisor"
	RoleOperator   = "operator"
	RoleObserver   = "observer"
)

var validRoles = map[string]bool{
	RoleAdmin:      true,
	RoleHR:         true,
	RoleSupervisor: true,
	RoleOperator:   true,
	RoleObserver:   true,
}

func ValidRole(role string) bool {
	return validRoles[role]
}

// EvaluatorRoles may submit weekly evaluations; the supervisor case is
// further restricted to direct reports by the relationship gate.
var EvaluatorRoles = []string{RoleAdmin, RoleHR, RoleSupervisor}

// RiskReaderRoles may read the department risk dashboard.
var RiskReaderRoles = []string{RoleAdmin, RoleHR}
