package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/futureme/internal/screens/welcome"
	"github.com/abhisek/futureme/internal/ui/theme"
)

// renderTitle returns the banner, block letters only when the cabinet is
// wide enough.
func renderTitle(frameWidth int, compact bool) string {
	if compact {
		return welcome.RenderBanner(0)
	}
	return welcome.RenderBanner(frameWidth - 6)
}

// renderStatsBar summarizes the quiz in a double-border box.
func renderStatsBar(questions, paths, cw int, compact bool) string {
	qStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	pStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			qStyle.Render(fmt.Sprintf("?%d", questions)),
			pStyle.Render(fmt.Sprintf("◆%d", paths)),
			tStyle.Render("⏱2m"),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			qStyle.Render(fmt.Sprintf("? %d QUESTIONS", questions)),
			pStyle.Render(fmt.Sprintf("◆ %d PATHS", paths)),
			tStyle.Render("⏱ 2 MIN"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered in the content width.
func renderMascotBox(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot())
}

// renderIntro renders the one-line pitch under the title.
func renderIntro(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(welcome.Tagline)
}
