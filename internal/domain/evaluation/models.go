package evaluation

import "time"

type WeeklyEvaluation struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	WeekStart    time.Time `json:"weekStart"`
	OverallScore float64   `json:"overallScore"`
	CreatedAt    time.Time `json:"createdAt"`
}

type WarningLetter struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Severity   string    `json:"severity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RiskEntry is the dashboard projection of an active warning letter.
type RiskEntry struct {
	EmployeeID string `json:"employee_id"`
	Severity   string `json:"severity"`
}
