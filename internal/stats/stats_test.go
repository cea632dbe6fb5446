package stats

import (
	"testing"
	"time"

	"github.com/ptdat/prodomo/internal/store"
)

// A fixed Wednesday, local time.
var wednesday = time.Date(2026, 8, 26, 14, 30, 0, 0, time.Local)

func sessionOn(day time.Time, minutes int, mode string) store.Session {
	return store.Session{Timestamp: day, DurationMin: minutes, Mode: mode}
}

func daysAgo(n int) time.Time {
	return wednesday.AddDate(0, 0, -n)
}

// ==================== Streak ====================

func TestStreakContiguousDays(t *testing.T) {
	days := DistinctDays([]store.Session{
		sessionOn(daysAgo(0), 25, "focus"),
		sessionOn(daysAgo(1), 25, "focus"),
		sessionOn(daysAgo(2), 25, "focus"),
	})
	if got := Streak(days, wednesday); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreakTodayGetsGraceDay(t *testing.T) {
	// No session yet today; yesterday and the day before count.
	days := DistinctDays([]store.Session{
		sessionOn(daysAgo(1), 25, "focus"),
		sessionOn(daysAgo(2), 25, "focus"),
	})
	if got := Streak(days, wednesday); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreakGapTerminates(t *testing.T) {
	days := DistinctDays([]store.Session{
		sessionOn(daysAgo(1), 25, "focus"),
		sessionOn(daysAgo(3), 25, "focus"), // gap at -2
	})
	if got := Streak(days, wednesday); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(map[string]bool{}, wednesday); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreakMultipleSessionsOneDay(t *testing.T) {
	days := DistinctDays([]store.Session{
		sessionOn(daysAgo(0), 25, "focus"),
		sessionOn(daysAgo(0).Add(time.Hour), 25, "focus"),
	})
	if got := Streak(days, wednesday); got != 1 {
		t.Errorf("Streak = %d, want 1 (same day counts once)", got)
	}
}

// ==================== Week buckets ====================

func TestWeekStartMonday(t *testing.T) {
	start := WeekStart(wednesday, time.Monday)
	if start.Weekday() != time.Monday {
		t.Errorf("week starts on %v, want Monday", start.Weekday())
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", start, want)
	}
}

func TestWeekStartSunday(t *testing.T) {
	start := WeekStart(wednesday, time.Sunday)
	want := time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", start, want)
	}
}

func TestWeekBucketsOrderAndHours(t *testing.T) {
	sessions := []store.Session{
		sessionOn(wednesday, 60, "focus"),
		sessionOn(wednesday.Add(-time.Hour), 30, "focus"), // same day, 1.5h total
		sessionOn(daysAgo(9), 120, "focus"),               // previous week, excluded
	}

	buckets := WeekBuckets(sessions, wednesday, time.Monday)

	if buckets[0].Label != "Mon" || buckets[6].Label != "Sun" {
		t.Errorf("bucket order %q..%q, want Mon..Sun", buckets[0].Label, buckets[6].Label)
	}
	// Wednesday is index 2 of a Monday-start week.
	if got := buckets[2].Hours; got != 1.5 {
		t.Errorf("Wednesday hours = %v, want 1.5", got)
	}
	if !buckets[2].IsToday {
		t.Error("Wednesday bucket not flagged as today")
	}
	for i, b := range buckets {
		if i != 2 && b.IsToday {
			t.Errorf("bucket %d (%s) flagged as today", i, b.Label)
		}
		if i != 2 && b.Hours != 0 {
			t.Errorf("bucket %d (%s) hours = %v, want 0", i, b.Label, b.Hours)
		}
	}
}

// ==================== Summary ====================

func TestSummarize(t *testing.T) {
	sessions := []store.Session{
		sessionOn(daysAgo(0), 60, "focus"),
		sessionOn(daysAgo(1), 30, "focus"),
	}

	sum := Summarize(sessions, wednesday)

	if sum.TotalHours != 1.5 {
		t.Errorf("TotalHours = %v, want 1.5", sum.TotalHours)
	}
	if sum.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", sum.Sessions)
	}
	if sum.Streak != 2 {
		t.Errorf("Streak = %d, want 2", sum.Streak)
	}
	if sum.DailyAverage != 0.75 {
		t.Errorf("DailyAverage = %v, want 0.75", sum.DailyAverage)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, wednesday)
	if sum.TotalHours != 0 || sum.Sessions != 0 || sum.Streak != 0 || sum.DailyAverage != 0 {
		t.Errorf("empty summary = %+v, want zeros", sum)
	}
}

func TestModeSplit(t *testing.T) {
	split := ModeSplit([]store.Session{
		sessionOn(daysAgo(0), 25, "focus"),
		sessionOn(daysAgo(0), 25, "focus"),
		sessionOn(daysAgo(0), 5, "shortBreak"),
	})
	if split["focus"] != 50 {
		t.Errorf("focus minutes = %d, want 50", split["focus"])
	}
	if split["shortBreak"] != 5 {
		t.Errorf("shortBreak minutes = %d, want 5", split["shortBreak"])
	}
}

func TestParseWeekStart(t *testing.T) {
	if ParseWeekStart("sunday") != time.Sunday {
		t.Error("sunday not parsed")
	}
	if ParseWeekStart("monday") != time.Monday {
		t.Error("monday not parsed")
	}
	if ParseWeekStart("whatever") != time.Monday {
		t.Error("unknown value should fall back to Monday")
	}
}
