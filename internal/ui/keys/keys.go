package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/futureme/internal/ui/layout"
)

// Navigation bindings shared by menus and the quiz.
var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Quiz bindings.
var (
	Choose = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "a", "b", "c", "d", "e"),
		key.WithHelp("A-E", "Pick"),
	)
	Toggle = key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("Space", "Pick"),
	)
	Next = key.NewBinding(
		key.WithKeys("enter", "right", "n"),
		key.WithHelp("Enter", "Next"),
	)
	Prev = key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←", "Back"),
	)
)

// Result bindings.
var (
	Replay = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Play again"),
	)
	// Home leaves enter alone: it is also the last question's advance key
	// and a repeat would skip the result.
	Home = key.NewBinding(
		key.WithKeys("esc", "h"),
		key.WithHelp("Esc", "Home"),
	)
)

// OptionIndex maps "1".."5" and "a".."e" to 0..4.
func OptionIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	switch c := k[0]; {
	case c >= '1' && c <= '5':
		return int(c - '1'), true
	case c >= 'a' && c <= 'e':
		return int(c - 'a'), true
	}
	return 0, false
}

// Hints converts enabled bindings to footer hints, skipping bindings that
// share help text with an earlier one.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	seen := make(map[key.Help]bool, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || h.Key == "" || seen[h] {
			continue
		}
		seen[h] = true
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
