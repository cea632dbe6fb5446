package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/export"
	"github.com/ptdat/prodomo/internal/reminder"
	"github.com/ptdat/prodomo/internal/store"
	"github.com/ptdat/prodomo/internal/weather"
)

const statusTimeout = 5 * time.Second

// App is the root model. It owns the shared 1 Hz tick and fans messages out
// to the view models; the clock and the pomodoro machine both advance from
// the same tick.
type App struct {
	store     *store.Store
	scheduler *reminder.Scheduler
	notifier  reminder.Notifier

	view   viewState
	width  int
	height int

	help     help.Model
	showHelp bool

	status      statusMsg
	statusUntil time.Time

	home     homeModel
	timer    timerModel
	tasks    tasksModel
	stats    statsModel
	settings settingsModel
}

// New builds the app and re-arms persisted task reminders, since timers do
// not survive a restart.
func New(s *store.Store, wx *weather.Client, sched *reminder.Scheduler, n reminder.Notifier) App {
	app := App{
		store:     s,
		scheduler: sched,
		notifier:  n,
		help:      help.New(),
		home:      newHomeModel(s, wx),
		timer:     newTimerModel(s),
		tasks:     newTasksModel(s, sched, n),
		stats:     newStatsModel(s),
		settings:  newSettingsModel(s),
	}
	app.tasks.rearmReminders()
	return app
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		a.home.Init(),
		a.tasks.refresh(),
		a.stats.refresh(),
		a.settings.refresh(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) formActive() bool {
	return a.home.formActive || a.tasks.formActive || a.settings.formActive
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		body := msg.Height - 4
		a.home.setSize(msg.Width, body)
		a.timer.setSize(msg.Width, body)
		a.tasks.setSize(msg.Width, body)
		a.stats.setSize(msg.Width, body)
		a.settings.setSize(msg.Width, body)
		return a, nil

	case tickMsg:
		cmds = append(cmds, tickCmd())
		if !a.statusUntil.IsZero() && time.Time(msg).After(a.statusUntil) {
			a.status = statusMsg{}
			a.statusUntil = time.Time{}
		}
		var cmd tea.Cmd
		a.home, cmd = a.home.update(msg)
		cmds = append(cmds, cmd)
		a.timer, cmd = a.timer.update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg
		a.statusUntil = time.Now().Add(statusTimeout)
		return a, nil

	case sessionLoggedMsg:
		var cmd tea.Cmd
		a.stats, cmd = a.stats.update(msg)
		cmds = append(cmds, cmd, a.notifyCmd("Pomodoro", "Focus session complete"))
		return a, tea.Batch(cmds...)

	case settingsSavedMsg:
		var cmd tea.Cmd
		a.timer, cmd = a.timer.update(msg)
		cmds = append(cmds, cmd)
		a.home, cmd = a.home.update(msg)
		cmds = append(cmds, cmd, a.stats.refresh())
		return a, tea.Batch(cmds...)

	case exportDoneMsg:
		a.status = statusMsg{text: fmt.Sprintf("Exported to %s", msg.path)}
		a.statusUntil = time.Now().Add(statusTimeout)
		return a, nil

	case tea.KeyMsg:
		if a.formActive() {
			return a.routeToActive(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.scheduler.Shutdown()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.view + 1) % 5)
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewHome)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewTimer)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewTasks)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewStats)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Export):
			return a, a.exportCmd()
		}
		return a.routeToActive(msg)
	}

	return a.routeToActive(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.view = v
	switch v {
	case viewTasks:
		return a, a.tasks.refresh()
	case viewStats:
		return a, a.stats.refresh()
	case viewSettings:
		return a, a.settings.refresh()
	}
	return a, nil
}

// routeToActive delivers a message to the view that owns it. Data messages
// go to their view regardless of which tab is showing, so background
// refreshes land.
func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case homeDataMsg, weatherMsg:
		a.home, cmd = a.home.update(msg)
		return a, cmd
	case tasksDataMsg, taskCreatedMsg:
		a.tasks, cmd = a.tasks.update(msg)
		return a, cmd
	case statsDataMsg:
		a.stats, cmd = a.stats.update(msg)
		return a, cmd
	case settingsDataMsg:
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	switch a.view {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) notifyCmd(title, body string) tea.Cmd {
	if v, err := a.store.GetSetting("notifications"); err != nil || v != "on" {
		return nil
	}
	return func() tea.Msg {
		_ = a.notifier.Notify(title, body)
		return nil
	}
}

func (a App) exportCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := a.store.ListSessions()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		tasks, err := a.store.ListTasks(store.TaskFilter{})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		path := fmt.Sprintf("prodomo-export-%s.json", time.Now().Format("20060102-150405"))
		if err := export.ToJSON(sessions, tasks, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()

	var body string
	switch a.view {
	case viewHome:
		body = a.home.view()
	case viewTimer:
		body = a.timer.view()
	case viewTasks:
		body = a.tasks.view()
	case viewStats:
		body = a.stats.view()
	case viewSettings:
		body = a.settings.view()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a App) renderHeader() string {
	title := titleStyle.Render(" prodomo ")

	var tabs []string
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if viewState(i) == a.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)),
	)
}

func (a App) renderFooter() string {
	if a.showHelp {
		return footerStyle.Render(a.help.FullHelpView(keys.FullHelp()))
	}

	if a.status.text != "" {
		style := successStyle
		if a.status.isError {
			style = errorStyle
		}
		return footerStyle.Render(style.Render(a.status.text))
	}

	return footerStyle.Render(a.help.ShortHelpView(keys.ShortHelp()))
}
