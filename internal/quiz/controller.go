package quiz

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/futureme/internal/catalog"
)

// ToneEmitter plays the feedback sounds. Implementations must not block.
type ToneEmitter interface {
	// Selection is played once per accepted option selection.
	Selection()
	// Transition is played on every accepted move between questions.
	Transition()
	// Completion is played when the quiz completes.
	Completion()
}

// NopTones is a silent ToneEmitter.
type NopTones struct{}

func (NopTones) Selection()  {}
func (NopTones) Transition() {}
func (NopTones) Completion() {}

// Controller is the presentation-facing wrapper around a Session. It fires
// tone hooks for accepted transitions only and logs them.
type Controller struct {
	session   *Session
	tones     ToneEmitter
	log       *zap.Logger
	sessionID string
}

// NewController creates a controller over questions. A nil tones or log
// falls back to a silent emitter or a no-op logger.
func NewController(questions []catalog.Question, tones ToneEmitter, log *zap.Logger) *Controller {
	if tones == nil {
		tones = NopTones{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		session: NewSession(questions),
		tones:   tones,
		log:     log,
	}
}

// Start begins a new run with a fresh session ID.
func (c *Controller) Start() {
	c.session.Start()
	c.sessionID = uuid.New().String()
	c.log.Info("quiz started",
		zap.String("session_id", c.sessionID),
		zap.Int("questions", len(c.session.Questions())))
}

// Reset abandons the run.
func (c *Controller) Reset() {
	c.session.Reset()
	c.log.Info("quiz reset", zap.String("session_id", c.sessionID))
	c.sessionID = ""
}

// Select chooses an option on the current question.
func (c *Controller) Select(optionIndex int) bool {
	if !c.session.Select(optionIndex) {
		c.log.Debug("selection rejected",
			zap.String("session_id", c.sessionID),
			zap.Int("option", optionIndex),
			zap.Stringer("phase", c.session.Phase()))
		return false
	}
	c.tones.Selection()
	c.log.Debug("option selected",
		zap.String("session_id", c.sessionID),
		zap.Int("index", c.session.index),
		zap.Int("option", optionIndex))
	return true
}

// Advance moves forward, completing the quiz from the last question.
func (c *Controller) Advance() bool {
	if !c.session.Advance() {
		c.log.Debug("advance rejected",
			zap.String("session_id", c.sessionID),
			zap.Int("index", c.session.index))
		return false
	}
	c.tones.Transition()
	if c.session.Phase() == PhaseCompleted {
		c.tones.Completion()
		scores := c.session.Scores()
		top, _ := RankCategories(scores)
		c.log.Info("quiz completed",
			zap.String("session_id", c.sessionID),
			zap.Int("answered", scores.Total()),
			zap.Stringer("top", top))
		return true
	}
	c.log.Debug("advanced",
		zap.String("session_id", c.sessionID),
		zap.Int("index", c.session.index))
	return true
}

// Retreat moves back one question.
func (c *Controller) Retreat() bool {
	if !c.session.Retreat() {
		return false
	}
	c.tones.Transition()
	c.log.Debug("retreated",
		zap.String("session_id", c.sessionID),
		zap.Int("index", c.session.index))
	return true
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	return c.session.State()
}

// Result returns the ranked result once the quiz is completed.
func (c *Controller) Result() (Result, bool) {
	return c.session.Result()
}

// Question returns the current question.
func (c *Controller) Question() catalog.Question {
	return c.session.questions[c.session.index]
}

// SessionID returns the ID of the current run, empty before Start.
func (c *Controller) SessionID() string {
	return c.sessionID
}
