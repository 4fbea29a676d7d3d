package evaluation

import (
	"testing"
	"time"
)

func TestWeekStartStableAcrossWholeWeek(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 7; day++ {
		within := monday.AddDate(0, 0, day).Add(13*time.Hour + 37*time.Minute)
		got := WeekStart(within)
		if !got.Equal(monday) {
			t.Fatalf("day offset %d: expected %v, got %v", day, monday, got)
		}
	}
}

func TestWeekStartOnMondayMidnight(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(monday); !got.Equal(monday) {
		t.Fatalf("expected monday to map to itself, got %v", got)
	}
}

func TestWeekStartSundayBelongsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(sunday); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWeekStartCrossesMonthBoundary(t *testing.T) {
	// Tuesday 2026-09-01 belongs to the week starting Monday 2026-08-31.
	tuesday := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(tuesday); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWeekStartNormalizesNonUTCInput(t *testing.T) {
	// Monday 03:00 in UTC+10 is still Sunday in UTC and must land on the
	// preceding Monday slot.
	loc := time.FixedZone("UTC+10", 10*3600)
	local := time.Date(2026, 8, 31, 3, 0, 0, 0, loc)
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(local); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
