package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/stats"
	"github.com/ptdat/prodomo/internal/store"
)

type statsModel struct {
	store  *store.Store
	width  int
	height int

	summary stats.Summary
	buckets [7]stats.DayBucket
	split   map[string]int

	chart barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type statsDataMsg struct {
	summary stats.Summary
	buckets [7]stats.DayBucket
	split   map[string]int
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		sessions, _ := m.store.ListSessions()
		now := time.Now()
		weekStart := stats.ParseWeekStart(m.setting("week_start", "monday"))

		return statsDataMsg{
			summary: stats.Summarize(sessions, now),
			buckets: stats.WeekBuckets(sessions, now, weekStart),
			split:   stats.ModeSplit(sessions),
		}
	}
}

func (m statsModel) setting(k, fallback string) string {
	v, err := m.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.summary = msg.summary
		m.buckets = msg.buckets
		m.split = msg.split
		m.buildChart()
		return m, nil

	case sessionLoggedMsg:
		return m, m.refresh()
	}
	return m, nil
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, b := range m.buckets {
		style := highlightStyle
		if b.IsToday {
			style = accentStyle
		}
		bars = append(bars, barchart.BarData{
			Label: b.Label,
			Values: []barchart.BarValue{
				{Name: b.Label, Value: b.Hours, Style: style},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4

	cards := m.renderCards()
	weekLabel := mutedStyle.Render(fmt.Sprintf("Week of %s", m.buckets[0].Date.Format("Jan 02")))
	chartView := m.chart.View()
	splitView := m.renderSplit()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Stats"), "",
			cards, "",
			weekLabel,
			chartView, "",
			splitView,
		),
	)
}

func (m statsModel) renderCards() string {
	card := func(label, value, sub string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			highlightStyle.Bold(true).Render(value),
			titleStyle.Render(label),
			mutedStyle.Render(sub),
		)
	}

	cards := []string{
		card("Total Hours", fmt.Sprintf("%.1f", m.summary.TotalHours), "all time focus"),
		card("Streak", fmt.Sprintf("%d days", m.summary.Streak), "keep it up"),
		card("Daily Avg", formatHoursF(m.summary.DailyAverage), "per active day"),
		card("Sessions", fmt.Sprintf("%d", m.summary.Sessions), "completed"),
	}

	boxed := make([]string, len(cards))
	for i, c := range cards {
		boxed[i] = panelStyle.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxed...)
}

func (m statsModel) renderSplit() string {
	if len(m.split) == 0 {
		return mutedStyle.Render("  No sessions yet")
	}

	total := 0
	for _, mins := range m.split {
		total += mins
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Mode Split"))
	for _, mode := range []string{"focus", "shortBreak", "longBreak"} {
		mins, ok := m.split[mode]
		if !ok {
			continue
		}
		pct := float64(mins) / float64(total) * 100
		rows = append(rows, fmt.Sprintf("  %-12s %5dm %5.1f%%", mode, mins, pct))
	}
	return strings.Join(rows, "\n")
}
