// Package almanac wraps the lunar-go calendar library and the dashboard's
// static event countdown list. The conversion math lives entirely in the
// library; this package only shapes it for display.
package almanac

import (
	"sort"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// LunarDate is the lunisolar date for a given solar day.
type LunarDate struct {
	Day    int
	Month  int
	Year   int
	GanZhi string // sexagenary year name
	Zodiac string // zodiac animal of the year
}

func Lunar(t time.Time) LunarDate {
	lunar := calendar.NewSolarFromDate(t).GetLunar()
	return LunarDate{
		Day:    lunar.GetDay(),
		Month:  lunar.GetMonth(),
		Year:   lunar.GetYear(),
		GanZhi: lunar.GetYearInGanZhi(),
		Zodiac: lunar.GetYearShengXiao(),
	}
}

type Event struct {
	Name string
	Desc string
	Date time.Time
}

// DefaultEvents is the dashboard's built-in countdown list.
func DefaultEvents() []Event {
	return []Event{
		{Name: "Christmas 2025", Desc: "Merry Christmas!", Date: day(2025, 12, 24)},
		{Name: "New Year 2026", Desc: "New Year Celebration", Date: day(2026, 1, 1)},
		{Name: "Valentine", Desc: "Love Season", Date: day(2026, 2, 14)},
		{Name: "Tet Nguyen Dan", Desc: "Year of the Horse", Date: day(2026, 2, 17)},
		{Name: "National Exam 26", Desc: "National Exam", Date: day(2026, 6, 11)},
		{Name: "National Day", Desc: "Independence Day", Date: day(2026, 9, 2)},
	}
}

// NextEvent returns the nearest event on or after today and the days left
// until it. ok is false when every event is in the past.
func NextEvent(events []Event, today time.Time) (Event, int, bool) {
	type upcoming struct {
		ev   Event
		diff int
	}
	var future []upcoming
	for _, ev := range events {
		d := DaysUntil(today, ev.Date)
		if d >= 0 {
			future = append(future, upcoming{ev: ev, diff: d})
		}
	}
	if len(future) == 0 {
		return Event{}, 0, false
	}
	sort.Slice(future, func(i, j int) bool { return future[i].diff < future[j].diff })
	return future[0].ev, future[0].diff, true
}

// DaysUntil counts whole calendar days from a to b, negative when b is
// earlier.
func DaysUntil(a, b time.Time) int {
	a = midnight(a)
	b = midnight(b)
	return int(b.Sub(a).Hours() / 24)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
