package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/futureme/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗   ██╗████████╗██╗   ██╗██████╗ ███████╗  ███╗   ███╗███████╗
 ██╔════╝██║   ██║╚══██╔══╝██║   ██║██╔══██╗██╔════╝  ████╗ ████║██╔════╝
 █████╗  ██║   ██║   ██║   ██║   ██║██████╔╝█████╗    ██╔████╔██║█████╗  
 ██╔══╝  ██║   ██║   ██║   ██║   ██║██╔══██╗██╔══╝    ██║╚██╔╝██║██╔══╝  
 ██║     ╚██████╔╝   ██║   ╚██████╔╝██║  ██║███████╗  ██║ ╚═╝ ██║███████╗
 ╚═╝      ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝  ╚═╝     ╚═╝╚══════╝`

const bannerCompact = "F U T U R E · M E"

// bannerWidth is the width of bannerArt plus a margin. Every line of
// bannerArt is padded to the same width so it centers as a block.
const bannerWidth = 76

// RenderBanner returns the FUTURE ME banner, or a compact fallback for
// terminals narrower than the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
