package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/router"
	"github.com/abhisek/futureme/internal/screen"
	"github.com/abhisek/futureme/internal/ui/components"
	"github.com/abhisek/futureme/internal/ui/keys"
	"github.com/abhisek/futureme/internal/ui/layout"
	"github.com/abhisek/futureme/internal/ui/theme"
)

// Menu labels.
const (
	LabelStart = "LET'S GO!"
	LabelQuit  = "QUIT"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. startQuiz builds a quiz screen over a freshly
// started session each time the player chooses to play.
func New(startQuiz func() screen.Screen) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			s := startQuiz()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}},
		{Label: LabelQuit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Enter, keys.Quit)
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(width, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(cw))
	}
	sections = append(sections,
		renderIntro(cw),
		renderStatsBar(len(catalog.Questions()), len(catalog.All()), cw, compact),
		h.menu.View(cw, compact),
	)

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height, theme.Primary)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
