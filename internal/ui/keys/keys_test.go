package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/futureme/internal/ui/layout"
)

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"5", 4, true},
		{"a", 0, true},
		{"e", 4, true},
		{"6", 0, false},
		{"f", 0, false},
		{"0", 0, false},
		{"enter", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := OptionIndex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, Next))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeyRight}, Next))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: 'n', Text: "n"}, Next))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeyLeft}, Prev))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, Toggle))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: 'c', Text: "c"}, Choose))
	assert.False(t, key.Matches(tea.KeyPressMsg{Code: 'x', Text: "x"}, Choose))
}

func TestHomeDoesNotShareAdvanceKey(t *testing.T) {
	enter := tea.KeyPressMsg{Code: tea.KeyEnter}
	assert.True(t, key.Matches(enter, Next))
	assert.False(t, key.Matches(enter, Home))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: tea.KeyEscape}, Home))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: 'h', Text: "h"}, Home))
}

func TestHints_DedupesAndSkipsDisabled(t *testing.T) {
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("X", "Off"), key.WithDisabled())
	got := Hints(Up, Down, off, Quit)
	assert.Equal(t, []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}, got)
}
