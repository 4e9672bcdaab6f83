package result

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/futureme/internal/catalog"
	qz "github.com/abhisek/futureme/internal/quiz"
	"github.com/abhisek/futureme/internal/router"
	"github.com/abhisek/futureme/internal/screen"
	"github.com/abhisek/futureme/internal/ui/components"
	"github.com/abhisek/futureme/internal/ui/confetti"
	"github.com/abhisek/futureme/internal/ui/keys"
	"github.com/abhisek/futureme/internal/ui/layout"
	"github.com/abhisek/futureme/internal/ui/theme"
)

const (
	tickInterval = 50 * time.Millisecond
	barDelay     = 350 * time.Millisecond
	barFill      = time.Second

	barLabelWidth = 14
	confettiRows  = 4
)

type tickMsg time.Time

// ResultScreen reveals the top category with animated bars and confetti.
type ResultScreen struct {
	result  qz.Result
	onHome  func()
	replay  func() screen.Screen
	pieces  []confetti.Piece
	elapsed time.Duration
	left    bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. onHome runs before popping back to the home
// screen; replay builds the screen for a new run. A nil rng seeds the
// confetti randomly.
func New(res qz.Result, onHome func(), replay func() screen.Screen, rng *rand.Rand) *ResultScreen {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if onHome == nil {
		onHome = func() {}
	}
	return &ResultScreen{
		result: res,
		onHome: onHome,
		replay: replay,
		pieces: confetti.Burst(rng, confetti.DefaultCount),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *ResultScreen) Title() string {
	return "Your Future"
}

func (s *ResultScreen) Status() string {
	return fmt.Sprintf("%d/%d answered", s.result.TotalAnswered, catalog.QuestionCount)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Replay, keys.Home, keys.Quit)
}

// animating reports whether bars or confetti are still moving.
func (s *ResultScreen) animating() bool {
	return s.elapsed < barDelay+barFill || !confetti.Done(s.elapsed)
}

// barProgress is the fill fraction of the percentage bars.
func (s *ResultScreen) barProgress() float64 {
	if s.elapsed <= barDelay {
		return 0
	}
	return min(float64(s.elapsed-barDelay)/float64(barFill), 1)
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.left || !s.animating() {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyPressMsg:
		if s.left {
			return s, nil
		}
		switch {
		case key.Matches(msg, keys.Replay) && s.replay != nil:
			s.left = true
			next := s.replay()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case key.Matches(msg, keys.Home):
			s.left = true
			s.onHome()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight)
	cw := components.ContentWidth(width)
	top := s.result.TopProfile
	accent := theme.Hex(top.Color)

	var sections []string
	if !compact {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render("✨ your future self is ✨"))
	}
	sections = append(sections,
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(accent).
			Bold(true).
			Render(strings.ToUpper(top.DisplayName())),
		theme.Subtitle.Width(cw).Render(top.Subtitle),
	)

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	body := strings.Join([]string{
		strings.Join(sections, "\n"),
		s.renderBars(cw),
		s.renderCareers(cw),
	}, sep)

	if !compact {
		body += sep + renderSkills(top, cw)
		body += sep + components.ArcadeCard(theme.Body.Italic(true).Render(top.Motivation), cw, accent)
	} else {
		body += sep + theme.Body.Italic(true).Width(cw).Align(lipgloss.Center).Render(top.Motivation)
	}

	if !confetti.Done(s.elapsed) {
		spare := height - 2 - lipgloss.Height(body)
		if rows := min(spare-1, confettiRows); rows > 0 {
			body = confetti.Render(s.pieces, cw, rows, s.elapsed) + "\n" + body
		}
	}

	return components.CabinetFrame(body, width, height, accent)
}

// renderBars draws one bar per category in declared order.
func (s *ResultScreen) renderBars(cw int) string {
	progress := s.barProgress()
	rows := make([]string, 0, len(catalog.All()))
	for _, cat := range catalog.All() {
		p := catalog.MustLookup(cat)
		bar := components.NewProgressBar(p.DisplayName(), float64(s.result.Percentages[cat])/100*progress, true, cw)
		bar.LabelWidth = barLabelWidth
		bar.Color = theme.Hex(p.Color)
		rows = append(rows, bar.View())
	}
	return strings.Join(rows, "\n")
}

// renderCareers lists the top careers highlighted, then the runner-up's.
func (s *ResultScreen) renderCareers(cw int) string {
	var top, also []string
	for _, c := range s.result.Careers {
		label := c.Icon + " " + c.Name
		if c.Highlighted {
			top = append(top, lipgloss.NewStyle().
				Foreground(theme.Hex(catalog.MustLookup(c.Category).Color)).
				Bold(true).
				Render(label))
			continue
		}
		also = append(also, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
	}

	out := joinFit(top, cw)
	if len(also) > 0 {
		also[0] = theme.Hint.Render("also: ") + also[0]
		out += "\n" + joinFit(also, cw)
	}
	return out
}

// joinFit centers items on one line, or one per line when they do not fit.
func joinFit(items []string, cw int) string {
	line := strings.Join(items, "  ·  ")
	if lipgloss.Width(line) > cw {
		line = strings.Join(items, "\n")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

func renderSkills(p catalog.Profile, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(strings.Join(p.Skills, "  "))
}
