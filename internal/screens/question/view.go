package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/ui/components"
	"github.com/abhisek/l2quiz/internal/ui/theme"
)

const cardWidth = 72

func (q *QuestionScreen) View(width, height int) string {
	v := q.session.AnsweringView()

	w := min(cardWidth, width-4)
	inner := w - 6 // border + padding

	var b strings.Builder

	b.WriteString(components.NewProgress(v.Number, v.Total, inner).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(v.Text))
	b.WriteString("\n\n")

	b.WriteString(q.radio.View())
	b.WriteString("\n")

	controls := q.advanceButton().View()
	if !v.CanAdvance {
		controls = lipgloss.JoinHorizontal(lipgloss.Center,
			controls, "  ", theme.Hint.Render("choose an answer to continue"))
	}
	b.WriteString(controls)

	card := theme.Card.Width(w).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
