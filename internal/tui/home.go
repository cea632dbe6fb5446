package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/almanac"
	"github.com/ptdat/prodomo/internal/store"
	"github.com/ptdat/prodomo/internal/weather"
)

const weatherRefreshSeconds = 600

// homeModel is the ambient dashboard: clock, daily focus note, weather,
// lunar date, event countdown, and the bookmark dock.
type homeModel struct {
	store  *store.Store
	wx     *weather.Client
	width  int
	height int

	now  time.Time
	day  string
	note string

	obs      *weather.Observation
	wxFailed bool
	wxTicks  int

	lunar     almanac.LunarDate
	nextEvent almanac.Event
	daysLeft  int
	hasEvent  bool

	bookmarks []store.Bookmark

	formActive bool
	form       *huh.Form
	noteInput  *string
}

func newHomeModel(s *store.Store, wx *weather.Client) homeModel {
	note := ""
	now := time.Now()
	return homeModel{
		store:     s,
		wx:        wx,
		now:       now,
		day:       now.Format("2006-01-02"),
		noteInput: &note,
	}
}

func (h homeModel) Init() tea.Cmd {
	return tea.Batch(h.loadData(), h.fetchWeather())
}

func (h *homeModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

type homeDataMsg struct {
	note      string
	lunar     almanac.LunarDate
	nextEvent almanac.Event
	daysLeft  int
	hasEvent  bool
	bookmarks []store.Bookmark
}

func (h homeModel) loadData() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		note, _ := h.store.FocusNote(now.Format("2006-01-02"))
		bookmarks, _ := h.store.ListBookmarks()
		ev, days, ok := almanac.NextEvent(almanac.DefaultEvents(), now)

		return homeDataMsg{
			note:      note,
			lunar:     almanac.Lunar(now),
			nextEvent: ev,
			daysLeft:  days,
			hasEvent:  ok,
			bookmarks: bookmarks,
		}
	}
}

func (h homeModel) fetchWeather() tea.Cmd {
	return func() tea.Msg {
		lat := h.settingFloat("latitude", 21.0285)
		lon := h.settingFloat("longitude", 105.8542)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		obs, err := h.wx.Current(ctx, lat, lon)
		return weatherMsg{obs: obs, err: err}
	}
}

func (h homeModel) settingFloat(key string, fallback float64) float64 {
	if v, err := h.store.GetSetting(key); err == nil {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	if h.formActive && h.form != nil {
		return h.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		h.now = time.Time(msg)

		var cmds []tea.Cmd
		if day := h.now.Format("2006-01-02"); day != h.day {
			// Midnight rollover: the focus note expires, the lunar date and
			// countdowns move on.
			h.day = day
			cmds = append(cmds, h.loadData())
		}
		h.wxTicks++
		if h.wxTicks >= weatherRefreshSeconds {
			h.wxTicks = 0
			cmds = append(cmds, h.fetchWeather())
		}
		if len(cmds) > 0 {
			return h, tea.Batch(cmds...)
		}
		return h, nil

	case homeDataMsg:
		h.note = msg.note
		h.lunar = msg.lunar
		h.nextEvent = msg.nextEvent
		h.daysLeft = msg.daysLeft
		h.hasEvent = msg.hasEvent
		h.bookmarks = msg.bookmarks
		return h, nil

	case weatherMsg:
		if msg.err != nil {
			h.wxFailed = true
			return h, nil
		}
		h.wxFailed = false
		h.obs = msg.obs
		return h, nil

	case settingsSavedMsg:
		// Coordinates may have changed.
		return h, h.fetchWeather()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return h.showNoteForm()
		case key.Matches(msg, keys.Clear):
			if h.note != "" {
				h.store.ClearFocusNote(h.day)
				h.note = ""
			}
			return h, nil
		}
	}
	return h, nil
}

func (h homeModel) showNoteForm() (homeModel, tea.Cmd) {
	*h.noteInput = h.note
	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is your main focus for today?").
				Value(h.noteInput),
		),
	).WithShowHelp(true)
	h.formActive = true
	return h, h.form.Init()
}

func (h homeModel) updateForm(msg tea.Msg) (homeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			h.formActive = false
			h.form = nil
			return h, nil
		}
	}

	form, cmd := h.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		h.form = f
	}

	if h.form.State == huh.StateCompleted {
		h.formActive = false
		h.form = nil
		note := strings.TrimSpace(*h.noteInput)
		if note == "" {
			h.store.ClearFocusNote(h.day)
		} else if err := h.store.SetFocusNote(h.day, note); err != nil {
			return h, errStatus(err)
		}
		h.note = note
		return h, nil
	}

	return h, cmd
}

func (h homeModel) view() string {
	if h.width < 20 {
		return "Terminal too small"
	}
	w := h.width - 4

	if h.formActive && h.form != nil {
		return panelStyle.Width(w).Render(h.form.View())
	}

	clock := h.renderClock(w)
	focus := h.renderFocus(w)
	mid := lipgloss.JoinHorizontal(lipgloss.Top,
		h.renderWeather(),
		h.renderLunar(),
		h.renderEvent(),
	)
	dock := h.renderDock(w)

	return lipgloss.JoinVertical(lipgloss.Left, clock, focus, mid, dock)
}

func (h homeModel) renderClock(w int) string {
	t := timerStyle.Width(w - 6).Render(h.now.Format("15:04:05"))
	date := mutedStyle.Width(w - 6).Align(lipgloss.Center).
		Render(strings.ToUpper(h.now.Format("Monday, 02 January 2006")))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, t, date))
}

func (h homeModel) renderFocus(w int) string {
	if h.note == "" {
		hint := mutedStyle.Render("No focus set. Press enter to set today's focus")
		return panelStyle.Width(w).Render(hint)
	}
	line := successStyle.Render("◎ ") + titleStyle.Render(h.note) +
		mutedStyle.Render("  (c to clear)")
	return activePanelStyle.Width(w).Render(line)
}

func (h homeModel) renderWeather() string {
	title := titleStyle.Render("Weather")
	var body string
	switch {
	case h.wxFailed:
		body = mutedStyle.Render("unavailable")
	case h.obs == nil:
		body = mutedStyle.Render("loading…")
	default:
		cond := weather.Classify(h.obs.Code)
		body = fmt.Sprintf("%s  %s\n%s",
			highlightStyle.Bold(true).Render(fmt.Sprintf("%.0f°", h.obs.Temperature)),
			cond.Glyph+" "+cond.Label,
			mutedStyle.Render(fmt.Sprintf("wind %.0f km/h", h.obs.WindSpeed)),
		)
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (h homeModel) renderLunar() string {
	title := titleStyle.Render("Lunar")
	body := fmt.Sprintf("%s\n%s",
		highlightStyle.Bold(true).Render(fmt.Sprintf("%02d/%02d", h.lunar.Day, h.lunar.Month)),
		mutedStyle.Render(fmt.Sprintf("%s · %s", h.lunar.GanZhi, h.lunar.Zodiac)),
	)
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (h homeModel) renderEvent() string {
	title := titleStyle.Render("Next Event")
	if !h.hasEvent {
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("none")))
	}
	body := fmt.Sprintf("%s\n%s",
		accentStyle.Bold(true).Render(fmt.Sprintf("%d days", h.daysLeft)),
		mutedStyle.Render(h.nextEvent.Name),
	)
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (h homeModel) renderDock(w int) string {
	if len(h.bookmarks) == 0 {
		return ""
	}
	var items []string
	for _, b := range h.bookmarks {
		items = append(items, highlightStyle.Render(b.Name))
	}
	return panelStyle.Width(w).Render(mutedStyle.Render("⚓ ") + strings.Join(items, mutedStyle.Render("  ·  ")))
}
