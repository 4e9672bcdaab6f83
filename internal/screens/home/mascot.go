package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/futureme/internal/ui/theme"
)

const mascotArt = ` ╭─────╮ 
╱ ✧ ◉ ◉ ╲
╲   ◡   ╱
 ╰─────╯ 
 ▕▔▔▔▔▔▏ `

// RenderMascot returns the crystal ball mascot. Lines share one width so
// centering keeps the shape.
func RenderMascot() string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(mascotArt)
}
