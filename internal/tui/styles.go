package tui

import "github.com/charmbracelet/lipgloss"

// palette is one selectable theme. The ids mirror the backdrop names of the
// original dashboard; in a terminal they become color schemes.
type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	errorC    lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var themes = map[string]palette{
	"aurora": {
		primary:   lipgloss.Color("#00D2FF"),
		accent:    lipgloss.Color("#FB7185"),
		muted:     lipgloss.Color("#666666"),
		success:   lipgloss.Color("#2DD4BF"),
		warning:   lipgloss.Color("#F39C12"),
		errorC:    lipgloss.Color("#E74C3C"),
		fg:        lipgloss.Color("#C0CAF5"),
		subtle:    lipgloss.Color("#414868"),
		highlight: lipgloss.Color("#60A5FA"),
	},
	"grid": {
		primary:   lipgloss.Color("#A855F7"),
		accent:    lipgloss.Color("#EC4899"),
		muted:     lipgloss.Color("#5B5B6B"),
		success:   lipgloss.Color("#2ECC71"),
		warning:   lipgloss.Color("#F39C12"),
		errorC:    lipgloss.Color("#E74C3C"),
		fg:        lipgloss.Color("#E9D5FF"),
		subtle:    lipgloss.Color("#3B2E58"),
		highlight: lipgloss.Color("#C084FC"),
	},
	"beams": {
		primary:   lipgloss.Color("#FFFFFF"),
		accent:    lipgloss.Color("#FACC15"),
		muted:     lipgloss.Color("#777777"),
		success:   lipgloss.Color("#A3E635"),
		warning:   lipgloss.Color("#FB923C"),
		errorC:    lipgloss.Color("#F87171"),
		fg:        lipgloss.Color("#E5E5E5"),
		subtle:    lipgloss.Color("#44403C"),
		highlight: lipgloss.Color("#FDE68A"),
	},
	"lightning": {
		primary:   lipgloss.Color("#2563EB"),
		accent:    lipgloss.Color("#38BDF8"),
		muted:     lipgloss.Color("#64748B"),
		success:   lipgloss.Color("#34D399"),
		warning:   lipgloss.Color("#FBBF24"),
		errorC:    lipgloss.Color("#F87171"),
		fg:        lipgloss.Color("#DBEAFE"),
		subtle:    lipgloss.Color("#1E3A5F"),
		highlight: lipgloss.Color("#7DD3FC"),
	},
	"prismatic": {
		primary:   lipgloss.Color("#6366F1"),
		accent:    lipgloss.Color("#F472B6"),
		muted:     lipgloss.Color("#6B7280"),
		success:   lipgloss.Color("#4ADE80"),
		warning:   lipgloss.Color("#FACC15"),
		errorC:    lipgloss.Color("#FB7185"),
		fg:        lipgloss.Color("#EDE9FE"),
		subtle:    lipgloss.Color("#4C1D95"),
		highlight: lipgloss.Color("#A78BFA"),
	},
}

var themeNames = []string{"aurora", "grid", "beams", "lightning", "prismatic"}

// Styles rebuilt by ApplyTheme.
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	timerStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	ApplyTheme("aurora")
}

// ApplyTheme swaps the global style set for a theme id; unknown ids fall back
// to aurora.
func ApplyTheme(id string) {
	p, ok := themes[id]
	if !ok {
		p = themes["aurora"]
	}

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.primary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.subtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.primary).
		Padding(1, 2)

	timerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.fg)

	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	warningStyle = lipgloss.NewStyle().Foreground(p.warning)
	errorStyle = lipgloss.NewStyle().Foreground(p.errorC)
	mutedStyle = lipgloss.NewStyle().Foreground(p.muted)
	highlightStyle = lipgloss.NewStyle().Foreground(p.highlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(p.primary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(p.fg)
}
