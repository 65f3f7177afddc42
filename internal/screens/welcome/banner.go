package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/ui/theme"
)

const bannerArt = `
 ██╗     ██████╗      ██████╗ ██╗   ██╗██╗███████╗
 ██║     ╚════██╗    ██╔═══██╗██║   ██║██║╚══███╔╝
 ██║      █████╔╝    ██║   ██║██║   ██║██║  ███╔╝
 ██║     ██╔═══╝     ██║▄▄ ██║██║   ██║██║ ███╔╝
 ███████╗███████╗    ╚██████╔╝╚██████╔╝██║███████╗
 ╚══════╝╚══════╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "L 2   Q U I Z"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
