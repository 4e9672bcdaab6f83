package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/quiz"
	"github.com/abhisek/futureme/internal/router"
	"github.com/abhisek/futureme/internal/screen"
	"github.com/abhisek/futureme/internal/screens/home"
	quizscreen "github.com/abhisek/futureme/internal/screens/quiz"
	"github.com/abhisek/futureme/internal/screens/welcome"
	"github.com/abhisek/futureme/internal/ui/keys"
	"github.com/abhisek/futureme/internal/ui/layout"
)

// Options configures the terminal UI.
type Options struct {
	// Tones plays the feedback sounds; nil is silent.
	Tones quiz.ToneEmitter
	// Log receives quiz transitions; nil discards them.
	Log *zap.Logger
	// SkipWelcome opens directly on the first question.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *quiz.Controller
	// start is pushed by Init when the splash is skipped.
	start  screen.Screen
	width  int
	height int
}

// newAppModel wires the controller and the initial screen stack.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	ctrl := quiz.NewController(catalog.Questions(), opts.Tones, log.Named("quiz"))

	newHome := func() screen.Screen {
		return home.New(func() screen.Screen { return quizscreen.Start(ctrl) })
	}

	m := AppModel{ctrl: ctrl}
	if opts.SkipWelcome {
		m.router = router.New(newHome())
		m.start = quizscreen.Start(ctrl)
	} else {
		m.router = router.New(welcome.New(newHome))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.start != nil {
		s := m.start
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = layout.Brand
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			hints = kp.KeyHints()
		}
	}
	if hints == nil {
		hints = keys.Hints(keys.Quit)
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
