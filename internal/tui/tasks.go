package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ptdat/prodomo/internal/reminder"
	"github.com/ptdat/prodomo/internal/store"
)

type taskFilterState int

const (
	filterAll taskFilterState = iota
	filterActive
	filterDone
)

var filterNames = []string{"all", "active", "done"}

type tasksModel struct {
	store     *store.Store
	scheduler *reminder.Scheduler
	notifier  reminder.Notifier
	width     int
	height    int

	tasks  []store.Task
	cursor int
	filter taskFilterState

	formActive  bool
	form        *huh.Form
	newText     *string
	newDeadline *string
}

func newTasksModel(s *store.Store, sched *reminder.Scheduler, n reminder.Notifier) tasksModel {
	text, deadline := "", ""
	return tasksModel{
		store:       s,
		scheduler:   sched,
		notifier:    n,
		newText:     &text,
		newDeadline: &deadline,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type tasksDataMsg struct {
	tasks []store.Task
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := t.store.ListTasks(t.storeFilter())
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) storeFilter() store.TaskFilter {
	switch t.filter {
	case filterActive:
		f := false
		return store.TaskFilter{Completed: &f}
	case filterDone:
		f := true
		return store.TaskFilter{Completed: &f}
	default:
		return store.TaskFilter{}
	}
}

func (t tasksModel) notificationsEnabled() bool {
	v, err := t.store.GetSetting("notifications")
	return err == nil && v == "on"
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = max(0, len(t.tasks)-1)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			return t.showForm()
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return t.toggleSelected()
		case key.Matches(msg, keys.Delete):
			return t.deleteSelected()
		case key.Matches(msg, keys.Filter):
			t.filter = (t.filter + 1) % 3
			t.cursor = 0
			return t, t.refresh()
		}
	}
	return t, nil
}

func (t tasksModel) toggleSelected() (tasksModel, tea.Cmd) {
	if t.cursor >= len(t.tasks) {
		return t, nil
	}
	if err := t.store.ToggleTask(t.tasks[t.cursor].ID); err != nil {
		return t, errStatus(err)
	}
	return t, t.refresh()
}

// deleteSelected cancels the pending reminder before removing the task, so a
// deleted task can never notify.
func (t tasksModel) deleteSelected() (tasksModel, tea.Cmd) {
	if t.cursor >= len(t.tasks) {
		return t, nil
	}
	task := t.tasks[t.cursor]
	t.scheduler.Cancel(task.ID)
	if err := t.store.DeleteTask(task.ID); err != nil {
		return t, errStatus(err)
	}
	return t, tea.Batch(t.refresh(), func() tea.Msg {
		return statusMsg{text: "Task deleted"}
	})
}

func (t tasksModel) showForm() (tasksModel, tea.Cmd) {
	*t.newText = ""
	*t.newDeadline = ""

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(t.newText),
			huh.NewInput().
				Title("Deadline (optional)").
				Description("YYYY-MM-DD HH:MM, local time").
				Value(t.newDeadline),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		return t.createTask()
	}

	return t, cmd
}

func (t tasksModel) createTask() (tasksModel, tea.Cmd) {
	deadline, err := parseDeadline(*t.newDeadline)
	if err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Bad deadline: %v", err), isError: true}
		}
	}

	task, err := t.store.CreateTask(*t.newText, deadline)
	if err != nil {
		return t, errStatus(err)
	}

	status := "Task added"
	if task.ReminderSet {
		if t.notificationsEnabled() {
			t.armReminder(task)
			status = "Task added, reminder set"
		} else {
			// Degraded mode: the deadline is stored but nothing will fire.
			status = "Task added (notifications off, no reminder)"
		}
	}

	return t, tea.Batch(
		t.refresh(),
		func() tea.Msg { return taskCreatedMsg{task: task} },
		func() tea.Msg { return statusMsg{text: status} },
	)
}

func (t tasksModel) armReminder(task *store.Task) {
	if task.Deadline == nil {
		return
	}
	lookup := func(id string) (string, bool, bool) {
		got, err := t.store.GetTask(id)
		if err != nil || got == nil {
			return "", false, false
		}
		return got.Text, got.Completed, true
	}
	t.scheduler.Schedule(task.ID, *task.Deadline, reminder.TaskCallback(lookup, t.notifier, task.ID))
}

// rearmReminders re-schedules reminders for unfinished tasks with future
// deadlines; called once at startup since timers do not survive a restart.
func (t tasksModel) rearmReminders() {
	if !t.notificationsEnabled() {
		return
	}
	incomplete := false
	tasks, err := t.store.ListTasks(store.TaskFilter{Completed: &incomplete})
	if err != nil {
		return
	}
	now := time.Now()
	for i := range tasks {
		task := tasks[i]
		if task.ReminderSet && task.Deadline != nil && task.Deadline.After(now) {
			t.armReminder(&task)
		}
	}
}

func parseDeadline(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if d, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("expected YYYY-MM-DD [HH:MM], got %q", v)
}

func errStatus(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Task"), "", t.form.View()),
		)
	}

	pending := 0
	for _, task := range t.tasks {
		if !task.Completed {
			pending++
		}
	}

	header := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render("Tasks"),
		mutedStyle.Render(fmt.Sprintf("[%s]", filterNames[t.filter])),
		highlightStyle.Render(fmt.Sprintf("%d pending", pending)),
	)

	var rows []string
	rows = append(rows, header)
	if !t.notificationsEnabled() {
		rows = append(rows, warningStyle.Render("  notifications off, deadline reminders disabled"))
	}
	rows = append(rows, "")

	if len(t.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  No tasks. Press n to add one."))
	}

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		check := "○"
		text := task.Text
		if task.Completed {
			check = "●"
			style = mutedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, text)
		if task.Deadline != nil {
			line += mutedStyle.Render("  ⏰ " + task.Deadline.Local().Format("Jan 02 15:04"))
		}
		rows = append(rows, style.Render(line))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  enter: toggle  d: delete  f: filter"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
