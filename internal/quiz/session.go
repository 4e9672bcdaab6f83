package quiz

import (
	"math"
	"slices"

	"github.com/abhisek/futureme/internal/catalog"
)

// Unanswered marks a question with no selected option.
const Unanswered = -1

// Session tracks the runtime state of one quiz run. It performs no I/O;
// effects are the Controller's concern.
type Session struct {
	questions []catalog.Question
	phase     Phase
	index     int
	answers   []int
	scores    Scores
}

// State is a read-only snapshot of a session for rendering.
type State struct {
	Phase Phase
	// Index is the current question, in [0, Total).
	Index int
	Total int
	// Answers holds the chosen option per question, or Unanswered.
	Answers []int
	// Selected is Answers[Index].
	Selected   int
	CanAdvance bool
	CanRetreat bool
	IsLast     bool
	// ProgressPercent drives the "Question X of N" bar.
	ProgressPercent int
}

// NewSession creates a session over the given questions in PhaseNotStarted.
func NewSession(questions []catalog.Question) *Session {
	s := &Session{questions: questions}
	s.clear()
	return s
}

func (s *Session) clear() {
	s.index = 0
	s.answers = make([]int, len(s.questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.scores = NewScores()
}

// Start begins a fresh run at the first question. Valid from any phase.
func (s *Session) Start() {
	s.clear()
	s.phase = PhaseInProgress
}

// Reset discards the run and returns to PhaseNotStarted.
func (s *Session) Reset() {
	s.clear()
	s.phase = PhaseNotStarted
}

// Select records optionIndex as the answer to the current question,
// overwriting any earlier choice. It never moves to another question.
// Returns false, without mutating, outside PhaseInProgress or when
// optionIndex is out of range.
func (s *Session) Select(optionIndex int) bool {
	if s.phase != PhaseInProgress {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[s.index].Options) {
		return false
	}
	s.answers[s.index] = optionIndex
	return true
}

// Advance moves to the next question, or completes the quiz from the last
// one. Rejected (false, no mutation) until the current question is answered.
func (s *Session) Advance() bool {
	if !s.canAdvance() {
		return false
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return true
	}
	s.phase = PhaseCompleted
	s.scores = ComputeScores(s.questions, s.answers)
	return true
}

// Retreat moves to the previous question, keeping its answer.
func (s *Session) Retreat() bool {
	if !s.canRetreat() {
		return false
	}
	s.index--
	return true
}

func (s *Session) canAdvance() bool {
	return s.phase == PhaseInProgress && s.answers[s.index] != Unanswered
}

func (s *Session) canRetreat() bool {
	return s.phase == PhaseInProgress && s.index > 0
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Questions returns the question bank the session runs over.
func (s *Session) Questions() []catalog.Question {
	return s.questions
}

// Scores returns a copy of the cached scores. They are zero until the
// session completes.
func (s *Session) Scores() Scores {
	return s.scores.Clone()
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	total := len(s.questions)
	st := State{
		Phase:      s.phase,
		Index:      s.index,
		Total:      total,
		Answers:    slices.Clone(s.answers),
		Selected:   Unanswered,
		CanAdvance: s.canAdvance(),
		CanRetreat: s.canRetreat(),
		IsLast:     s.index == total-1,
	}
	if total > 0 {
		st.Selected = s.answers[s.index]
		st.ProgressPercent = int(math.Round(float64(s.index+1) / float64(total) * 100))
	}
	return st
}

// Result ranks the answers. It is only available once the session is
// completed; scores are recomputed in full on every call.
func (s *Session) Result() (Result, bool) {
	if s.phase != PhaseCompleted {
		return Result{}, false
	}
	s.scores = ComputeScores(s.questions, s.answers)
	return BuildResult(s.scores), true
}
