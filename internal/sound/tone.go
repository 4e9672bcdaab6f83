package sound

import (
	"fmt"
	"strings"
)

// Tone identifies one of the feedback effects.
type Tone int

const (
	TonePop    Tone = iota // Option selected
	ToneWhoosh             // Moved between questions
	ToneChime              // Quiz completed
)

// AllTones returns every tone in display order.
func AllTones() []Tone {
	return []Tone{TonePop, ToneWhoosh, ToneChime}
}

func (t Tone) String() string {
	switch t {
	case TonePop:
		return "pop"
	case ToneWhoosh:
		return "whoosh"
	case ToneChime:
		return "chime"
	default:
		return fmt.Sprintf("tone(%d)", int(t))
	}
}

// ParseTone resolves a tone by name, case-insensitively.
func ParseTone(name string) (Tone, error) {
	for _, t := range AllTones() {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tone %q: must be pop, whoosh or chime", name)
}
