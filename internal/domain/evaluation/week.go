package evaluation

import "time"

// WeekStart returns the Monday 00:00 UTC of the week containing t. The week
// slot is always derived from server wall-clock time, never from client
// input, so every date within a Monday-Sunday span maps to the same slot.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}
