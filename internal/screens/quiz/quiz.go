package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	qz "github.com/abhisek/futureme/internal/quiz"
	"github.com/abhisek/futureme/internal/router"
	"github.com/abhisek/futureme/internal/screen"
	"github.com/abhisek/futureme/internal/screens/result"
	"github.com/abhisek/futureme/internal/ui/components"
	"github.com/abhisek/futureme/internal/ui/keys"
	"github.com/abhisek/futureme/internal/ui/layout"
	"github.com/abhisek/futureme/internal/ui/theme"
)

// fadeDuration is how long a new question is drawn dimmed.
const fadeDuration = 200 * time.Millisecond

// fadeDoneMsg ends the fade started for question change seq.
type fadeDoneMsg struct{ seq int }

// QuizScreen walks the player through the questions of a started
// controller.
type QuizScreen struct {
	ctrl    *qz.Controller
	options components.OptionList
	fading  bool
	fadeSeq int
	// rng seeds the result confetti; nil picks a random seed.
	rng *rand.Rand
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over ctrl, which must already be started.
func New(ctrl *qz.Controller) *QuizScreen {
	s := &QuizScreen{ctrl: ctrl}
	s.syncOptions()
	return s
}

// Start starts a fresh run on ctrl and returns its screen.
func Start(ctrl *qz.Controller) *QuizScreen {
	ctrl.Start()
	return New(ctrl)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	st := s.ctrl.State()
	return fmt.Sprintf("Question %d of %d", st.Index+1, st.Total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	st := s.ctrl.State()

	next := keys.Next
	next.SetEnabled(st.CanAdvance)
	if st.IsLast {
		next.SetHelp("Enter", "See results")
	}
	prev := keys.Prev
	prev.SetEnabled(st.CanRetreat)

	return keys.Hints(keys.Choose, keys.Up, next, prev, keys.Back)
}

// syncOptions rebuilds the option list for the current question.
func (s *QuizScreen) syncOptions() {
	s.options = components.NewOptionList(s.ctrl.Question().Options, s.ctrl.State().Selected)
}

// startFade dims the question and schedules the end of the fade.
func (s *QuizScreen) startFade() tea.Cmd {
	s.fading = true
	s.fadeSeq++
	seq := s.fadeSeq
	return tea.Tick(fadeDuration, func(time.Time) tea.Msg {
		return fadeDoneMsg{seq: seq}
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fadeDoneMsg:
		if msg.seq == s.fadeSeq {
			s.fading = false
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		s.ctrl.Reset()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case key.Matches(msg, keys.Choose):
		if i, ok := keys.OptionIndex(msg.String()); ok {
			s.choose(i)
		}
		return s, nil

	case key.Matches(msg, keys.Toggle):
		s.choose(s.options.Cursor)
		return s, nil

	case key.Matches(msg, keys.Up):
		s.options.MoveUp()
		return s, nil

	case key.Matches(msg, keys.Down):
		s.options.MoveDown()
		return s, nil

	case key.Matches(msg, keys.Next):
		if !s.ctrl.Advance() {
			return s, nil
		}
		if res, done := s.ctrl.Result(); done {
			return s, s.showResult(res)
		}
		s.syncOptions()
		return s, s.startFade()

	case key.Matches(msg, keys.Prev):
		if !s.ctrl.Retreat() {
			return s, nil
		}
		s.syncOptions()
		return s, s.startFade()
	}
	return s, nil
}

func (s *QuizScreen) choose(i int) {
	if s.ctrl.Select(i) {
		s.options.Chosen = i
		s.options.Cursor = i
	}
}

// showResult replaces this screen with the result screen.
func (s *QuizScreen) showResult(res qz.Result) tea.Cmd {
	ctrl := s.ctrl
	next := result.New(res,
		ctrl.Reset,
		func() screen.Screen { return Start(ctrl) },
		s.rng,
	)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) View(width, height int) string {
	st := s.ctrl.State()
	q := s.ctrl.Question()
	cw := components.ContentWidth(width)

	options := s.options
	options.Compact = layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", st.Index+1, st.Total),
		float64(st.ProgressPercent)/100, true, cw)
	bar.Color = theme.Primary

	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Q%d. %s", st.Index+1, q.Prompt))

	nextLabel := "Next →"
	if st.IsLast {
		nextLabel = "See Results ✨"
	}
	buttons := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.NewButton("← Back", st.CanRetreat).View() +
			"   " +
			components.NewButton(nextLabel, st.CanAdvance).View())

	body := strings.Join([]string{
		bar.View(),
		prompt,
		options.View(cw, theme.Primary),
		buttons,
	}, "\n\n")

	if s.fading {
		body = theme.Faded.Render(ansi.Strip(body))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
