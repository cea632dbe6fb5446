// Package pomodoro implements the countdown state machine behind the timer
// view. The machine is pure: it performs no I/O and owns no goroutines. The
// caller drives it with Tick at a one-per-second cadence and reacts to the
// returned completion events (persist the session, ring the bell).
package pomodoro

import "time"

type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

func (m Mode) String() string {
	switch m {
	case ModeShortBreak:
		return "shortBreak"
	case ModeLongBreak:
		return "longBreak"
	default:
		return "focus"
	}
}

func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "SHORT BREAK"
	case ModeLongBreak:
		return "LONG BREAK"
	default:
		return "FOCUS"
	}
}

type Config struct {
	Focus              time.Duration
	ShortBreak         time.Duration
	LongBreak          time.Duration
	CyclesPerLongBreak int
}

func DefaultConfig() Config {
	return Config{
		Focus:              25 * time.Minute,
		ShortBreak:         5 * time.Minute,
		LongBreak:          15 * time.Minute,
		CyclesPerLongBreak: 4,
	}
}

func (c Config) duration(m Mode) time.Duration {
	switch m {
	case ModeShortBreak:
		return c.ShortBreak
	case ModeLongBreak:
		return c.LongBreak
	default:
		return c.Focus
	}
}

// Session is the record emitted when a focus countdown completes.
type Session struct {
	Timestamp   time.Time
	DurationMin int
	Mode        string
}

// Completion is the alert event fired on every finished countdown. Session is
// non-nil only when a focus interval completed.
type Completion struct {
	From    Mode
	Next    Mode
	Session *Session
}

type Machine struct {
	cfg       Config
	mode      Mode
	remaining int // seconds
	running   bool
	cycles    int

	now func() time.Time
}

func New(cfg Config) *Machine {
	if cfg.CyclesPerLongBreak <= 0 {
		cfg.CyclesPerLongBreak = 4
	}
	return &Machine{
		cfg:       cfg,
		mode:      ModeFocus,
		remaining: int(cfg.Focus.Seconds()),
		now:       time.Now,
	}
}

func (m *Machine) Mode() Mode     { return m.mode }
func (m *Machine) Remaining() int { return m.remaining }
func (m *Machine) Running() bool  { return m.running }
func (m *Machine) Cycles() int    { return m.cycles }
func (m *Machine) Config() Config { return m.cfg }

// Duration is the full length of the current mode in seconds.
func (m *Machine) Duration() int { return int(m.cfg.duration(m.mode).Seconds()) }

// Start is a no-op on a running machine.
func (m *Machine) Start() { m.running = true }

// Pause is a no-op on a paused machine.
func (m *Machine) Pause() { m.running = false }

func (m *Machine) Toggle() { m.running = !m.running }

// Reset restores the full duration of the current mode. The running flag is
// left as it was.
func (m *Machine) Reset() {
	m.remaining = int(m.cfg.duration(m.mode).Seconds())
}

// SelectMode switches to a mode immediately and resets the countdown. A
// machine that was running keeps running in the new mode; a stopped one
// stays stopped.
func (m *Machine) SelectMode(mode Mode) {
	m.mode = mode
	m.remaining = int(m.cfg.duration(mode).Seconds())
}

// Tick advances the countdown by one second. It returns a Completion (and
// true) when this tick finished the countdown; the machine has already
// transitioned and auto-started the next mode by the time Tick returns.
// Ticks on a stopped machine do nothing.
func (m *Machine) Tick() (Completion, bool) {
	if !m.running {
		return Completion{}, false
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		return Completion{}, false
	}
	return m.complete(), true
}

func (m *Machine) complete() Completion {
	c := Completion{From: m.mode}

	if m.mode == ModeFocus {
		m.cycles++
		c.Session = &Session{
			Timestamp:   m.now(),
			DurationMin: int(m.cfg.Focus.Minutes()),
			Mode:        ModeFocus.String(),
		}
		if m.cycles%m.cfg.CyclesPerLongBreak == 0 {
			c.Next = ModeLongBreak
		} else {
			c.Next = ModeShortBreak
		}
	} else {
		c.Next = ModeFocus
	}

	m.mode = c.Next
	m.remaining = int(m.cfg.duration(c.Next).Seconds())
	m.running = true
	return c
}
