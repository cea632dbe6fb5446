package tui

import (
	"fmt"
	"time"

	"github.com/ptdat/prodomo/internal/store"
	"github.com/ptdat/prodomo/internal/weather"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewTimer
	viewTasks
	viewStats
	viewSettings
)

var viewNames = []string{"Home", "Timer", "Tasks", "Stats", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type sessionLoggedMsg struct {
	session *store.Session
}

type weatherMsg struct {
	obs *weather.Observation
	err error
}

type taskCreatedMsg struct {
	task *store.Task
}

type settingsSavedMsg struct{}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatCountdown renders remaining seconds as MM:SS.
func formatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatHoursF(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}
