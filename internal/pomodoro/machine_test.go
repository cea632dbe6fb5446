package pomodoro

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Focus:              3 * time.Second,
		ShortBreak:         2 * time.Second,
		LongBreak:          5 * time.Second,
		CyclesPerLongBreak: 2,
	}
}

// runOut ticks a running machine until it completes the current countdown.
func runOut(t *testing.T, m *Machine) Completion {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if c, done := m.Tick(); done {
			return c
		}
	}
	t.Fatal("machine never completed")
	return Completion{}
}

// ==================== Countdown ====================

func TestTickCountsDown(t *testing.T) {
	m := New(testConfig())
	m.Start()

	if _, done := m.Tick(); done {
		t.Fatal("completed after one tick of a 3s focus")
	}
	if got := m.Remaining(); got != 2 {
		t.Errorf("Remaining = %d, want 2", got)
	}
}

func TestTickWhileStoppedDoesNothing(t *testing.T) {
	m := New(testConfig())

	for i := 0; i < 5; i++ {
		if _, done := m.Tick(); done {
			t.Fatal("stopped machine completed")
		}
	}
	if got := m.Remaining(); got != 3 {
		t.Errorf("Remaining = %d, want 3 (untouched)", got)
	}
}

func TestStartPauseIdempotent(t *testing.T) {
	m := New(testConfig())

	m.Start()
	m.Start()
	if !m.Running() {
		t.Error("not running after Start")
	}

	m.Pause()
	m.Pause()
	if m.Running() {
		t.Error("running after Pause")
	}

	m.Toggle()
	if !m.Running() {
		t.Error("Toggle did not resume")
	}
}

// ==================== Completion ====================

func TestFocusCompletionEmitsSession(t *testing.T) {
	cfg := testConfig()
	m := New(cfg)
	stamp := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }
	m.Start()

	c := runOut(t, m)

	if c.From != ModeFocus {
		t.Errorf("From = %v, want focus", c.From)
	}
	if c.Next != ModeShortBreak {
		t.Errorf("Next = %v, want short break", c.Next)
	}
	if c.Session == nil {
		t.Fatal("focus completion carried no session")
	}
	if c.Session.DurationMin != int(cfg.Focus.Minutes()) {
		t.Errorf("DurationMin = %d, want %d", c.Session.DurationMin, int(cfg.Focus.Minutes()))
	}
	if c.Session.Mode != "focus" {
		t.Errorf("Mode = %q, want focus", c.Session.Mode)
	}
	if !c.Session.Timestamp.Equal(stamp) {
		t.Errorf("Timestamp = %v, want %v", c.Session.Timestamp, stamp)
	}
}

func TestCompletionAutoStartsNextMode(t *testing.T) {
	m := New(testConfig())
	m.Start()

	runOut(t, m)

	if !m.Running() {
		t.Error("machine stopped after transition")
	}
	if m.Mode() != ModeShortBreak {
		t.Errorf("Mode = %v, want short break", m.Mode())
	}
	if got := m.Remaining(); got != 2 {
		t.Errorf("Remaining = %d, want full short break (2)", got)
	}
}

func TestBreakCompletionReturnsToFocus(t *testing.T) {
	m := New(testConfig())
	m.SelectMode(ModeShortBreak)
	m.Start()

	c := runOut(t, m)

	if c.Session != nil {
		t.Error("break completion emitted a session")
	}
	if c.Next != ModeFocus {
		t.Errorf("Next = %v, want focus", c.Next)
	}
	if m.Mode() != ModeFocus {
		t.Errorf("Mode = %v, want focus", m.Mode())
	}
}

func TestLongBreakAfterConfiguredCycles(t *testing.T) {
	m := New(testConfig()) // long break every 2 focus cycles
	m.Start()

	first := runOut(t, m) // focus #1
	if first.Next != ModeShortBreak {
		t.Fatalf("cycle 1 Next = %v, want short break", first.Next)
	}

	runOut(t, m)           // short break
	second := runOut(t, m) // focus #2

	if second.Next != ModeLongBreak {
		t.Errorf("cycle 2 Next = %v, want long break", second.Next)
	}
	if m.Cycles() != 2 {
		t.Errorf("Cycles = %d, want 2", m.Cycles())
	}
	if got := m.Remaining(); got != 5 {
		t.Errorf("Remaining = %d, want full long break (5)", got)
	}
}

// ==================== Controls ====================

func TestResetRestoresFullDuration(t *testing.T) {
	m := New(testConfig())
	m.Start()
	m.Tick()

	m.Reset()

	if got := m.Remaining(); got != 3 {
		t.Errorf("Remaining = %d, want 3", got)
	}
	if !m.Running() {
		t.Error("Reset changed the running flag")
	}
}

func TestSelectModeCarriesRunningState(t *testing.T) {
	m := New(testConfig())
	m.Start()
	m.Tick()

	m.SelectMode(ModeLongBreak)

	if !m.Running() {
		t.Error("running machine stopped on mode switch")
	}
	if m.Mode() != ModeLongBreak {
		t.Errorf("Mode = %v, want long break", m.Mode())
	}
	if got := m.Remaining(); got != 5 {
		t.Errorf("Remaining = %d, want full long break (5)", got)
	}

	m.Pause()
	m.SelectMode(ModeFocus)
	if m.Running() {
		t.Error("stopped machine started on mode switch")
	}
}

func TestZeroCyclesConfigFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.CyclesPerLongBreak = 0
	m := New(cfg)

	if got := m.Config().CyclesPerLongBreak; got != 4 {
		t.Errorf("CyclesPerLongBreak = %d, want default 4", got)
	}
}

func TestModeStrings(t *testing.T) {
	cases := []struct {
		mode  Mode
		str   string
		label string
	}{
		{ModeFocus, "focus", "FOCUS"},
		{ModeShortBreak, "shortBreak", "SHORT BREAK"},
		{ModeLongBreak, "longBreak", "LONG BREAK"},
	}
	for _, tc := range cases {
		if got := tc.mode.String(); got != tc.str {
			t.Errorf("%v.String() = %q, want %q", tc.mode, got, tc.str)
		}
		if got := tc.mode.Label(); got != tc.label {
			t.Errorf("%v.Label() = %q, want %q", tc.mode, got, tc.label)
		}
	}
}
