// Package stats derives display aggregates from the session log: the current
// day streak, the weekly activity buckets, and the all-time summary. All
// functions are pure; callers pass the clock in.
package stats

import (
	"time"

	"github.com/ptdat/prodomo/internal/store"
)

const dayFormat = "2006-01-02"

// DayBucket is one day of the weekly activity chart.
type DayBucket struct {
	Date    time.Time
	Label   string // Mon, Tue, ...
	Hours   float64
	IsToday bool
}

type Summary struct {
	TotalHours   float64
	Sessions     int
	Streak       int
	DailyAverage float64
}

// DistinctDays returns the set of local calendar days that have at least one
// session.
func DistinctDays(sessions []store.Session) map[string]bool {
	days := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		days[s.Timestamp.Local().Format(dayFormat)] = true
	}
	return days
}

// Streak counts contiguous active days ending at today. A day without a
// session so far does not break the streak yet: if today is absent the scan
// starts at yesterday. Any older gap terminates the count.
func Streak(days map[string]bool, today time.Time) int {
	check := midnight(today)
	if !days[check.Format(dayFormat)] {
		check = check.AddDate(0, 0, -1)
	}

	streak := 0
	for days[check.Format(dayFormat)] {
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// WeekStart returns midnight of the first day of the week containing now.
func WeekStart(now time.Time, weekStart time.Weekday) time.Time {
	day := midnight(now)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// WeekBuckets buckets sessions into the 7 days of the current week, oldest
// first. Hours per day is the sum of session durations whose local calendar
// day matches.
func WeekBuckets(sessions []store.Session, now time.Time, weekStart time.Weekday) [7]DayBucket {
	start := WeekStart(now, weekStart)
	today := midnight(now).Format(dayFormat)

	minutes := make(map[string]int)
	for _, s := range sessions {
		minutes[s.Timestamp.Local().Format(dayFormat)] += s.DurationMin
	}

	var buckets [7]DayBucket
	for i := range buckets {
		d := start.AddDate(0, 0, i)
		key := d.Format(dayFormat)
		buckets[i] = DayBucket{
			Date:    d,
			Label:   d.Format("Mon"),
			Hours:   float64(minutes[key]) / 60,
			IsToday: key == today,
		}
	}
	return buckets
}

// Summarize computes the stat cards: total hours, session count, streak, and
// average hours per active day.
func Summarize(sessions []store.Session, now time.Time) Summary {
	totalMin := 0
	for _, s := range sessions {
		totalMin += s.DurationMin
	}
	days := DistinctDays(sessions)

	sum := Summary{
		TotalHours: float64(totalMin) / 60,
		Sessions:   len(sessions),
		Streak:     Streak(days, now),
	}
	if len(days) > 0 {
		sum.DailyAverage = sum.TotalHours / float64(len(days))
	}
	return sum
}

// ModeSplit sums minutes per mode label.
func ModeSplit(sessions []store.Session) map[string]int {
	split := make(map[string]int)
	for _, s := range sessions {
		split[s.Mode] += s.DurationMin
	}
	return split
}

// ParseWeekStart maps the week_start setting to a weekday; anything
// unrecognized falls back to Monday.
func ParseWeekStart(v string) time.Weekday {
	if v == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

func midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
