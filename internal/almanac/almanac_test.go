package almanac

import (
	"testing"
	"time"
)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{localDay(2026, 8, 26), localDay(2026, 8, 26), 0},
		{localDay(2026, 8, 26), localDay(2026, 8, 27), 1},
		{localDay(2026, 8, 26), localDay(2026, 9, 2), 7},
		{localDay(2026, 8, 26), localDay(2026, 8, 20), -6},
		// Time of day must not matter.
		{time.Date(2026, 8, 26, 23, 59, 0, 0, time.Local), time.Date(2026, 8, 27, 0, 1, 0, 0, time.Local), 1},
	}
	for _, tc := range cases {
		if got := DaysUntil(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysUntil(%v, %v) = %d, want %d", tc.a.Format("2006-01-02"), tc.b.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestNextEventPicksNearest(t *testing.T) {
	events := []Event{
		{Name: "far", Date: localDay(2026, 12, 1)},
		{Name: "near", Date: localDay(2026, 9, 2)},
		{Name: "past", Date: localDay(2026, 1, 1)},
	}

	ev, days, ok := NextEvent(events, localDay(2026, 8, 26))
	if !ok {
		t.Fatal("no event found")
	}
	if ev.Name != "near" {
		t.Errorf("picked %q, want near", ev.Name)
	}
	if days != 7 {
		t.Errorf("days = %d, want 7", days)
	}
}

func TestNextEventToday(t *testing.T) {
	events := []Event{{Name: "today", Date: localDay(2026, 8, 26)}}

	ev, days, ok := NextEvent(events, localDay(2026, 8, 26))
	if !ok || ev.Name != "today" || days != 0 {
		t.Errorf("got (%q, %d, %v), want (today, 0, true)", ev.Name, days, ok)
	}
}

func TestNextEventAllPast(t *testing.T) {
	events := []Event{{Name: "past", Date: localDay(2020, 1, 1)}}

	if _, _, ok := NextEvent(events, localDay(2026, 8, 26)); ok {
		t.Error("expected ok=false when every event is in the past")
	}
}

func TestLunarKnownDate(t *testing.T) {
	// 2026-02-17 is the first day of the lunar Year of the Horse.
	got := Lunar(localDay(2026, 2, 17))
	if got.Day != 1 || got.Month != 1 {
		t.Errorf("lunar date = %02d/%02d, want 01/01", got.Day, got.Month)
	}
	if got.GanZhi == "" || got.Zodiac == "" {
		t.Error("GanZhi/Zodiac empty")
	}
}
