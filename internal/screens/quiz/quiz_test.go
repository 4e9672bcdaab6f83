package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/futureme/internal/catalog"
	qz "github.com/abhisek/futureme/internal/quiz"
	"github.com/abhisek/futureme/internal/router"
	"github.com/abhisek/futureme/internal/screen"
	"github.com/abhisek/futureme/internal/screens/result"
)

type recordingTones struct {
	selections, transitions, completions int
}

func (r *recordingTones) Selection()  { r.selections++ }
func (r *recordingTones) Transition() { r.transitions++ }
func (r *recordingTones) Completion() { r.completions++ }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() (*QuizScreen, *qz.Controller, *recordingTones) {
	tones := &recordingTones{}
	ctrl := qz.NewController(catalog.Questions(), tones, nil)
	s := Start(ctrl)
	s.rng = rand.New(rand.NewPCG(5, 6))
	return s, ctrl, tones
}

func press(s *QuizScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func TestStart(t *testing.T) {
	s, ctrl, _ := testQuiz()

	if ctrl.State().Phase != qz.PhaseInProgress {
		t.Fatalf("phase = %v, want in progress", ctrl.State().Phase)
	}
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.Status() != "Question 1 of 6" {
		t.Errorf("Status = %q, want %q", s.Status(), "Question 1 of 6")
	}
	if s.Init() != nil {
		t.Error("Init should not return a command")
	}
}

func TestSelectByLetterAndNumber(t *testing.T) {
	s, ctrl, tones := testQuiz()

	press(s, keyPress('c'))
	if got := ctrl.State().Selected; got != 2 {
		t.Errorf("selected after 'c' = %d, want 2", got)
	}
	if s.options.Chosen != 2 || s.options.Cursor != 2 {
		t.Errorf("options chosen=%d cursor=%d, want 2", s.options.Chosen, s.options.Cursor)
	}

	press(s, keyPress('5'))
	if got := ctrl.State().Selected; got != 4 {
		t.Errorf("selected after '5' = %d, want 4", got)
	}
	if tones.selections != 2 {
		t.Errorf("selection tones = %d, want 2", tones.selections)
	}
}

func TestCursorAndSpace(t *testing.T) {
	s, ctrl, _ := testQuiz()

	press(s, specialKey(tea.KeyDown), specialKey(tea.KeyDown), specialKey(tea.KeyDown), specialKey(tea.KeyUp))
	if s.options.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.options.Cursor)
	}
	if ctrl.State().Selected != qz.Unanswered {
		t.Fatal("moving the cursor must not select")
	}

	press(s, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if got := ctrl.State().Selected; got != 2 {
		t.Errorf("selected = %d, want 2", got)
	}
}

func TestAdvanceRequiresSelection(t *testing.T) {
	s, ctrl, tones := testQuiz()

	if cmd := press(s, specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("advance without a selection should not produce a command")
	}
	if ctrl.State().Index != 0 {
		t.Errorf("index = %d, want 0", ctrl.State().Index)
	}
	if tones.transitions != 0 {
		t.Errorf("transition tones = %d, want 0", tones.transitions)
	}
}

func TestAdvanceFades(t *testing.T) {
	s, ctrl, tones := testQuiz()

	cmd := press(s, keyPress('a'), specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a fade command after advancing")
	}
	if ctrl.State().Index != 1 {
		t.Fatalf("index = %d, want 1", ctrl.State().Index)
	}
	if !s.fading {
		t.Error("expected the new question to fade in")
	}
	if tones.transitions != 1 {
		t.Errorf("transition tones = %d, want 1", tones.transitions)
	}
	if s.options.Chosen != qz.Unanswered || s.options.Cursor != 0 {
		t.Errorf("new question options chosen=%d cursor=%d", s.options.Chosen, s.options.Cursor)
	}

	s.Update(fadeDoneMsg{seq: s.fadeSeq - 1})
	if !s.fading {
		t.Error("a stale fade message must not end the current fade")
	}
	s.Update(fadeDoneMsg{seq: s.fadeSeq})
	if s.fading {
		t.Error("expected the fade to end")
	}
}

func TestRetreatRestoresChoice(t *testing.T) {
	s, ctrl, _ := testQuiz()

	press(s, keyPress('c'), keyPress('n'))
	if ctrl.State().Index != 1 {
		t.Fatalf("index = %d, want 1", ctrl.State().Index)
	}

	press(s, specialKey(tea.KeyLeft))
	if ctrl.State().Index != 0 {
		t.Fatalf("index after retreat = %d, want 0", ctrl.State().Index)
	}
	if s.options.Chosen != 2 || s.options.Cursor != 2 {
		t.Errorf("restored chosen=%d cursor=%d, want 2", s.options.Chosen, s.options.Cursor)
	}

	if cmd := press(s, keyPress('p')); cmd != nil {
		t.Error("retreat from the first question should be ignored")
	}
}

func TestCompletionReplacesWithResult(t *testing.T) {
	s, ctrl, tones := testQuiz()

	var cmd tea.Cmd
	for i := 0; i < catalog.QuestionCount; i++ {
		cmd = press(s, keyPress('d'), specialKey(tea.KeyRight))
	}
	if ctrl.State().Phase != qz.PhaseCompleted {
		t.Fatalf("phase = %v, want completed", ctrl.State().Phase)
	}
	if cmd == nil {
		t.Fatal("expected a command on completion")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*result.ResultScreen); !ok {
		t.Errorf("expected a result screen, got %T", msg.Screen)
	}
	if tones.completions != 1 {
		t.Errorf("completion tones = %d, want 1", tones.completions)
	}
}

func TestReplayFromResultStartsFreshRun(t *testing.T) {
	s, ctrl, _ := testQuiz()

	var cmd tea.Cmd
	for i := 0; i < catalog.QuestionCount; i++ {
		cmd = press(s, keyPress('a'), specialKey(tea.KeyEnter))
	}
	res := cmd().(router.ReplaceScreenMsg).Screen

	_, cmd = res.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected replay command")
	}
	next, ok := cmd().(router.ReplaceScreenMsg).Screen.(*QuizScreen)
	if !ok {
		t.Fatal("expected replay to build a quiz screen")
	}
	st := ctrl.State()
	if st.Phase != qz.PhaseInProgress || st.Index != 0 || st.Selected != qz.Unanswered {
		t.Errorf("replay state = %+v, want fresh run", st)
	}
	if next.Status() != "Question 1 of 6" {
		t.Errorf("Status = %q", next.Status())
	}
}

func TestEscResetsAndPops(t *testing.T) {
	s, ctrl, _ := testQuiz()
	press(s, keyPress('a'))

	cmd := press(s, specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if ctrl.State().Phase != qz.PhaseNotStarted {
		t.Errorf("phase = %v, want not started", ctrl.State().Phase)
	}
	if ctrl.SessionID() != "" {
		t.Error("expected the session ID to be cleared")
	}
}

func TestKeyHints(t *testing.T) {
	s, _, _ := testQuiz()

	if hasHint(s, "Next") {
		t.Error("Next should be hidden before a selection")
	}
	press(s, keyPress('a'))
	if !hasHint(s, "Next") {
		t.Error("Next should show after a selection")
	}

	for i := 0; i < catalog.QuestionCount-1; i++ {
		press(s, keyPress('a'), specialKey(tea.KeyEnter))
	}
	press(s, keyPress('b'))
	if !hasHint(s, "See results") {
		t.Error("expected 'See results' on the last question")
	}
}

func hasHint(s screen.KeyHintProvider, desc string) bool {
	for _, h := range s.KeyHints() {
		if h.Description == desc {
			return true
		}
	}
	return false
}

func TestView(t *testing.T) {
	s, _, _ := testQuiz()
	q := catalog.Questions()[0]

	for _, size := range [][2]int{{100, 30}, {60, 18}} {
		view := s.View(size[0], size[1])
		if !strings.Contains(view, "Question 1 of 6") {
			t.Errorf("%v: missing progress label", size)
		}
		for _, opt := range q.Options {
			if !strings.Contains(view, opt.Label) {
				t.Errorf("%v: missing option %q", size, opt.Label)
			}
		}
	}

	press(s, keyPress('a'), specialKey(tea.KeyEnter))
	view := s.View(100, 30)
	if !strings.Contains(view, "Question 2 of 6") {
		t.Error("faded view should still show the next question")
	}
}
