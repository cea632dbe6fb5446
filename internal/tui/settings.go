package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	focusMin      *string
	shortBreakMin *string
	longBreakMin  *string
	cycles        *string
	weekStart     *string
	theme         *string
	notifications *string
	latitude      *string
	longitude     *string
}

func newSettingsModel(s *store.Store) settingsModel {
	fm, sb, lb, cy := "", "", "", ""
	ws, th, nt, lat, lon := "", "", "", "", ""
	return settingsModel{
		store:         s,
		focusMin:      &fm,
		shortBreakMin: &sb,
		longBreakMin:  &lb,
		cycles:        &cy,
		weekStart:     &ws,
		theme:         &th,
		notifications: &nt,
		latitude:      &lat,
		longitude:     &lon,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.focusMin = s.getVal("focus_minutes", "25")
	*s.shortBreakMin = s.getVal("short_break_minutes", "5")
	*s.longBreakMin = s.getVal("long_break_minutes", "15")
	*s.cycles = s.getVal("cycles_per_long_break", "4")
	*s.weekStart = s.getVal("week_start", "monday")
	*s.theme = s.getVal("theme", "aurora")
	*s.notifications = s.getVal("notifications", "on")
	*s.latitude = s.getVal("latitude", "21.0285")
	*s.longitude = s.getVal("longitude", "105.8542")

	themeOptions := make([]huh.Option[string], len(themeNames))
	for i, name := range themeNames {
		themeOptions[i] = huh.NewOption(name, name)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(s.focusMin),
			huh.NewInput().Title("Short break (min)").Value(s.shortBreakMin),
			huh.NewInput().Title("Long break (min)").Value(s.longBreakMin),
			huh.NewInput().Title("Focus cycles before long break").Value(s.cycles),
		).Title("Pomodoro"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).Value(s.weekStart),
			huh.NewSelect[string]().Title("Theme").
				Options(themeOptions...).Value(s.theme),
			huh.NewSelect[string]().Title("Notifications").
				Options(
					huh.NewOption("On", "on"),
					huh.NewOption("Off", "off"),
				).Value(s.notifications),
			huh.NewInput().Title("Latitude").Value(s.latitude),
			huh.NewInput().Title("Longitude").Value(s.longitude),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSettings()
		ApplyTheme(*s.theme)
		return s, tea.Batch(
			s.refresh(),
			func() tea.Msg { return settingsSavedMsg{} },
		)
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.store.SetSetting("focus_minutes", *s.focusMin)
	s.store.SetSetting("short_break_minutes", *s.shortBreakMin)
	s.store.SetSetting("long_break_minutes", *s.longBreakMin)
	s.store.SetSetting("cycles_per_long_break", *s.cycles)
	s.store.SetSetting("week_start", *s.weekStart)
	s.store.SetSetting("theme", *s.theme)
	s.store.SetSetting("notifications", *s.notifications)
	s.store.SetSetting("latitude", *s.latitude)
	s.store.SetSetting("longitude", *s.longitude)
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(setting.Value)
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
