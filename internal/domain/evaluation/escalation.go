package evaluation

// EscalationSeverity applies the low-score rule to the most recent overall
// scores, newest first, as fetched by RecentScores. Three or more low scores
// escalate to critical, two to high; anything less does not escalate.
func EscalationSeverity(scores []float64) (string, bool) {
	low := 0
	for _, score := range scores {
		if score <= LowScoreThreshold {
			low++
		}
	}
	switch {
	case low >= EscalationWindow:
		return SeverityCritical, true
	case low >= 2:
		return SeverityHigh, true
	default:
		return "", false
	}
}
