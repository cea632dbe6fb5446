package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/pomodoro"
	"github.com/ptdat/prodomo/internal/store"
)

// timerModel drives the pomodoro machine from the app's 1 Hz tick and turns
// its completion events into persisted sessions and status alerts.
type timerModel struct {
	store  *store.Store
	width  int
	height int

	machine *pomodoro.Machine
}

func newTimerModel(s *store.Store) timerModel {
	m := timerModel{store: s}
	m.machine = pomodoro.New(m.loadConfig())
	return m
}

func (t *timerModel) loadConfig() pomodoro.Config {
	cfg := pomodoro.DefaultConfig()
	cfg.Focus = t.settingMinutes("focus_minutes", cfg.Focus)
	cfg.ShortBreak = t.settingMinutes("short_break_minutes", cfg.ShortBreak)
	cfg.LongBreak = t.settingMinutes("long_break_minutes", cfg.LongBreak)
	if v, err := t.store.GetSetting("cycles_per_long_break"); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CyclesPerLongBreak = n
		}
	}
	return cfg
}

func (t *timerModel) settingMinutes(key string, fallback time.Duration) time.Duration {
	if v, err := t.store.GetSetting(key); err == nil {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			return time.Duration(mins) * time.Minute
		}
	}
	return fallback
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		completion, done := t.machine.Tick()
		if !done {
			return t, nil
		}
		return t, t.handleCompletion(completion)

	case settingsSavedMsg:
		// Picking up new durations mid-countdown would corrupt the running
		// interval; apply them once the machine is idle.
		if !t.machine.Running() {
			t.machine = pomodoro.New(t.loadConfig())
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			t.machine.Start()
		case key.Matches(msg, keys.Pause):
			t.machine.Toggle()
		case key.Matches(msg, keys.Reset):
			t.machine.Reset()
		case key.Matches(msg, keys.Mode):
			t.machine.SelectMode(nextMode(t.machine.Mode()))
		}
	}
	return t, nil
}

func nextMode(m pomodoro.Mode) pomodoro.Mode {
	switch m {
	case pomodoro.ModeFocus:
		return pomodoro.ModeShortBreak
	case pomodoro.ModeShortBreak:
		return pomodoro.ModeLongBreak
	default:
		return pomodoro.ModeFocus
	}
}

// handleCompletion persists the emitted session (focus completions only) and
// surfaces the alert. A failed write is reported but does not stop the timer:
// the machine has already moved on to the next mode.
func (t timerModel) handleCompletion(c pomodoro.Completion) tea.Cmd {
	var cmds []tea.Cmd

	if c.Session != nil {
		sess, err := t.store.AppendSession(c.Session.Timestamp, c.Session.DurationMin, c.Session.Mode)
		if err != nil {
			cmds = append(cmds, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Session not saved: %v", err), isError: true}
			})
		} else {
			cmds = append(cmds, func() tea.Msg { return sessionLoggedMsg{session: sess} })
		}
	}

	text := "Break over, back to focus! \a"
	if c.From == pomodoro.ModeFocus {
		text = fmt.Sprintf("Focus complete! Time for a %s. \a", strings.ToLower(c.Next.Label()))
	}
	cmds = append(cmds, func() tea.Msg { return statusMsg{text: text} })

	return tea.Batch(cmds...)
}

func (t timerModel) view() string {
	w := t.width - 4

	title := titleStyle.Render("Pomodoro")
	modeRow := t.renderModeRow()

	countdown := formatCountdown(t.machine.Remaining())
	var timeDisplay, indicator string
	switch {
	case !t.machine.Running():
		timeDisplay = timerStyle.Width(w - 6).Render(countdown)
		indicator = mutedStyle.Render("Paused. Press space to start")
	case t.machine.Mode() == pomodoro.ModeFocus:
		timeDisplay = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(countdown)
		indicator = accentStyle.Bold(true).Render(t.machine.Mode().Label())
	default:
		timeDisplay = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(countdown)
		indicator = successStyle.Bold(true).Render(t.machine.Mode().Label())
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		modeRow,
		"",
		timeDisplay,
		indicator,
		"",
		t.renderCycleDots(),
	)

	controls := mutedStyle.Render("space: start/pause  r: reset  m: switch mode")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

func (t timerModel) renderModeRow() string {
	modes := []pomodoro.Mode{pomodoro.ModeFocus, pomodoro.ModeShortBreak, pomodoro.ModeLongBreak}
	var parts []string
	for _, m := range modes {
		if m == t.machine.Mode() {
			parts = append(parts, activeTabStyle.Render(m.Label()))
		} else {
			parts = append(parts, inactiveTabStyle.Render(m.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (t timerModel) renderCycleDots() string {
	per := t.machine.Config().CyclesPerLongBreak
	done := t.machine.Cycles() % per
	var parts []string
	for i := 0; i < per; i++ {
		if i < done {
			parts = append(parts, successStyle.Render("●"))
		} else {
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	counter := mutedStyle.Render(fmt.Sprintf("  %d completed", t.machine.Cycles()))
	return strings.Join(parts, " ") + counter
}
