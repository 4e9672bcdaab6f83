package quiz

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Fresh or reset, no question shown
	PhaseInProgress              // Answering questions
	PhaseCompleted               // Last question advanced, result available
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
