package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: rollup reds and blues on a dark card
var (
	Primary   = lipgloss.Color("#FF0420") // Optimism red
	Secondary = lipgloss.Color("#28A0F0") // Arbitrum blue
	Accent    = lipgloss.Color("#8247E5") // Polygon purple
	Success   = lipgloss.Color("#22C55E") // Green
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Radio group states
var (
	Cursor = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Checked = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Unchecked = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	// ButtonInactive is dimmed; the control cannot be pressed.
	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Faint(true).
			Padding(0, 2)
)
