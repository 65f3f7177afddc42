package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/ui/theme"
)

// Progress shows "Question n of total" followed by a segmented bar.
type Progress struct {
	Step  int // 1-based
	Total int
	Width int
}

// NewProgress creates a progress indicator.
func NewProgress(step, total, width int) Progress {
	return Progress{Step: step, Total: total, Width: width}
}

// Label returns the question counter text.
func (p Progress) Label() string {
	return fmt.Sprintf("Question %d of %d", p.Step, p.Total)
}

// View renders the label and bar.
func (p Progress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label())
	if p.Total <= 0 {
		return label
	}

	barWidth := p.Width - lipgloss.Width(label) - 2
	if barWidth < p.Total {
		barWidth = p.Total
	}

	filled := barWidth * p.Step / p.Total
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return label + "  " + filledStr + emptyStr
}
