package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "Question 2 of 6", 80)
	assert.Contains(t, h, Brand)
	assert.Contains(t, h, "Quiz")
	assert.Contains(t, h, "Question 2 of 6")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Back"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Next")
	assert.Contains(t, f, "Back")
	assert.Equal(t, FooterHeight, lipgloss.Height(f))
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "hello", footer, 80, 24)
	assert.Len(t, strings.Split(frame, "\n"), 24)
	assert.Contains(t, frame, "hello")
}

func TestRenderFrame_ClipsTallContent(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter(nil, 80)
	tall := strings.Repeat("line\n", 40)
	frame := RenderFrame(header, tall, footer, 80, 24)
	assert.Len(t, strings.Split(frame, "\n"), 24)
}
