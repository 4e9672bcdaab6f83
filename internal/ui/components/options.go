package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/ui/theme"
)

// optionLetters label the options of a question.
const optionLetters = "ABCDE"

// OptionList renders the answers of one question. Cursor is the keyboard
// focus; Chosen is the recorded answer or -1.
type OptionList struct {
	Options []catalog.Option
	Cursor  int
	Chosen  int
	// Compact drops the borders, one line per option.
	Compact bool
}

// NewOptionList creates a list with the cursor on the chosen option, or the
// first one when nothing is chosen yet.
func NewOptionList(options []catalog.Option, chosen int) OptionList {
	cursor := chosen
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return OptionList{Options: options, Cursor: cursor, Chosen: chosen}
}

// MoveUp moves the cursor up, stopping at the first option.
func (l *OptionList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last option.
func (l *OptionList) MoveDown() {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
}

// Letter returns the label letter for option i.
func Letter(i int) string {
	if i < 0 || i >= len(optionLetters) {
		return "?"
	}
	return optionLetters[i : i+1]
}

// View renders one row per option at width cw. The chosen option is drawn
// in accent, theme.Primary when nil, whatever category it scores.
func (l OptionList) View(cw int, accent color.Color) string {
	rows := make([]string, 0, len(l.Options))
	for i, opt := range l.Options {
		line := fmt.Sprintf("%s  %s  %s", Letter(i), opt.Icon, opt.Label)
		if i == l.Chosen {
			line += "  ✓"
		}
		if i == l.Cursor {
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		rows = append(rows, l.rowStyle(i, cw, accent).Render(line))
	}
	return strings.Join(rows, "\n")
}

// rowStyle styles option i. The chosen row outranks the cursor row.
func (l OptionList) rowStyle(i, cw int, accent color.Color) lipgloss.Style {
	if accent == nil {
		accent = theme.Primary
	}
	style := lipgloss.NewStyle().Width(cw)
	if !l.Compact {
		style = style.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	}

	switch {
	case i == l.Chosen && l.Compact:
		return style.Foreground(accent).Bold(true)
	case i == l.Chosen:
		return style.BorderForeground(accent).Foreground(theme.Text).Bold(true)
	case i == l.Cursor:
		return style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow)
	default:
		return style.BorderForeground(theme.Border).Foreground(theme.Text)
	}
}
