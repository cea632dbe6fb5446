package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ptdat/prodomo/internal/notify"
	"github.com/ptdat/prodomo/internal/pomodoro"
	"github.com/ptdat/prodomo/internal/reminder"
	"github.com/ptdat/prodomo/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func tick() tickMsg {
	return tickMsg(time.Now())
}

// ==================== Timer ====================

func shortMachine() *pomodoro.Machine {
	return pomodoro.New(pomodoro.Config{
		Focus:              2 * time.Second,
		ShortBreak:         1 * time.Second,
		LongBreak:          3 * time.Second,
		CyclesPerLongBreak: 4,
	})
}

func TestTimerLoadsConfigFromSettings(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("focus_minutes", "30")
	s.SetSetting("cycles_per_long_break", "3")

	m := newTimerModel(s)

	cfg := m.machine.Config()
	if cfg.Focus != 30*time.Minute {
		t.Errorf("Focus = %v, want 30m", cfg.Focus)
	}
	if cfg.CyclesPerLongBreak != 3 {
		t.Errorf("CyclesPerLongBreak = %d, want 3", cfg.CyclesPerLongBreak)
	}
}

func TestTimerIgnoresBadSettingValues(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting("focus_minutes", "banana")

	m := newTimerModel(s)

	if got := m.machine.Config().Focus; got != 25*time.Minute {
		t.Errorf("Focus = %v, want default 25m", got)
	}
}

func TestTimerCompletionPersistsSession(t *testing.T) {
	s := newTestStore(t)
	m := newTimerModel(s)
	m.machine = shortMachine()
	m.machine.Start()

	// Two ticks run out the 2s focus interval.
	m, _ = m.update(tick())
	m, _ = m.update(tick())

	n, err := s.CountSessions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("sessions = %d, want 1", n)
	}

	sessions, _ := s.ListSessions()
	if len(sessions) != 1 || sessions[0].Mode != "focus" {
		t.Errorf("persisted = %+v", sessions)
	}
}

func TestTimerKeysControlMachine(t *testing.T) {
	s := newTestStore(t)
	m := newTimerModel(s)

	m, _ = m.update(keyPress('s'))
	if !m.machine.Running() {
		t.Error("s did not start the machine")
	}

	m, _ = m.update(keyPress('m'))
	if m.machine.Mode() != pomodoro.ModeShortBreak {
		t.Errorf("Mode = %v, want short break after m", m.machine.Mode())
	}
	if !m.machine.Running() {
		t.Error("mode switch stopped a running machine")
	}

	m, _ = m.update(keyPress('r'))
	if got, want := m.machine.Remaining(), m.machine.Duration(); got != want {
		t.Errorf("Remaining = %d after reset, want %d", got, want)
	}
}

func TestTimerSettingsApplyOnlyWhenIdle(t *testing.T) {
	s := newTestStore(t)
	m := newTimerModel(s)
	s.SetSetting("focus_minutes", "50")

	m.machine.Start()
	m, _ = m.update(settingsSavedMsg{})
	if got := m.machine.Config().Focus; got != 25*time.Minute {
		t.Errorf("running machine reconfigured: Focus = %v", got)
	}

	m.machine.Pause()
	m, _ = m.update(settingsSavedMsg{})
	if got := m.machine.Config().Focus; got != 50*time.Minute {
		t.Errorf("idle machine kept old config: Focus = %v", got)
	}
}

// ==================== Tasks ====================

func newTestTasksModel(t *testing.T) (tasksModel, *store.Store, *reminder.Scheduler) {
	t.Helper()
	s := newTestStore(t)
	sched := reminder.NewScheduler()
	t.Cleanup(sched.Shutdown)
	return newTasksModel(s, sched, notify.Silent{}), s, sched
}

func TestTasksCreateWithReminder(t *testing.T) {
	m, s, sched := newTestTasksModel(t)

	*m.newText = "write report"
	*m.newDeadline = time.Now().Add(time.Hour).Format("2006-01-02 15:04")
	m, _ = m.createTask()

	tasks, err := s.ListTasks(store.TaskFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Text != "write report" {
		t.Fatalf("tasks = %+v", tasks)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want 1 armed reminder", sched.Pending())
	}
}

func TestTasksCreateNoReminderWhenNotificationsOff(t *testing.T) {
	m, s, sched := newTestTasksModel(t)
	s.SetSetting("notifications", "off")

	*m.newText = "quiet task"
	*m.newDeadline = time.Now().Add(time.Hour).Format("2006-01-02 15:04")
	m, _ = m.createTask()

	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 with notifications off", sched.Pending())
	}
}

func TestTasksCreateRejectsBadDeadline(t *testing.T) {
	m, s, _ := newTestTasksModel(t)

	*m.newText = "bad date"
	*m.newDeadline = "tomorrow-ish"
	m, _ = m.createTask()

	tasks, _ := s.ListTasks(store.TaskFilter{})
	if len(tasks) != 0 {
		t.Errorf("task created despite bad deadline: %+v", tasks)
	}
}

func TestTasksDeleteCancelsReminder(t *testing.T) {
	m, s, sched := newTestTasksModel(t)

	*m.newText = "doomed"
	*m.newDeadline = time.Now().Add(time.Hour).Format("2006-01-02 15:04")
	m, _ = m.createTask()

	tasks, _ := s.ListTasks(store.TaskFilter{})
	m.tasks = tasks
	m.cursor = 0
	m, _ = m.deleteSelected()

	if sched.Pending() != 0 {
		t.Errorf("Pending = %d after delete, want 0", sched.Pending())
	}
	left, _ := s.ListTasks(store.TaskFilter{})
	if len(left) != 0 {
		t.Errorf("tasks = %+v after delete", left)
	}
}

func TestTasksToggleSelected(t *testing.T) {
	m, s, _ := newTestTasksModel(t)

	*m.newText = "toggle me"
	m, _ = m.createTask()

	tasks, _ := s.ListTasks(store.TaskFilter{})
	m.tasks = tasks
	m.cursor = 0
	m, _ = m.toggleSelected()

	tasks, _ = s.ListTasks(store.TaskFilter{})
	if !tasks[0].Completed {
		t.Error("task not completed after toggle")
	}
}

func TestTasksRearmReminders(t *testing.T) {
	m, s, sched := newTestTasksModel(t)

	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)
	s.CreateTask("future", &future)
	s.CreateTask("past", &past)
	done, _ := s.CreateTask("done", &future)
	s.ToggleTask(done.ID)

	m.rearmReminders()

	if got := sched.Pending(); got != 1 {
		t.Errorf("Pending = %d, want 1 (future incomplete only)", got)
	}
}

func TestParseDeadline(t *testing.T) {
	cases := []struct {
		in      string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"  ", true, false},
		{"2026-09-01 14:30", false, false},
		{"2026-09-01", false, false},
		{"next tuesday", false, true},
	}
	for _, tc := range cases {
		got, err := parseDeadline(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("parseDeadline(%q) err = %v", tc.in, err)
			continue
		}
		if !tc.wantErr && tc.wantNil != (got == nil) {
			t.Errorf("parseDeadline(%q) = %v", tc.in, got)
		}
	}
}

// ==================== Formatting ====================

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
	}
	for _, tc := range cases {
		if got := formatCountdown(tc.secs); got != tc.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(90 * time.Minute); got != "01:30:00" {
		t.Errorf("formatDuration = %q, want 01:30:00", got)
	}
}

// ==================== Themes ====================

func TestApplyThemeUnknownFallsBack(t *testing.T) {
	ApplyTheme("grid")
	grid := timerStyle.GetForeground()

	ApplyTheme("no-such-theme")
	fallback := timerStyle.GetForeground()

	ApplyTheme("aurora")
	aurora := timerStyle.GetForeground()

	if fallback != aurora {
		t.Errorf("unknown theme fg = %v, want aurora %v", fallback, aurora)
	}
	if grid == aurora {
		t.Error("grid and aurora should differ")
	}
}
