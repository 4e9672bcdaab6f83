package confetti

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// Burst parameters.
const (
	DefaultCount = 50

	maxDelay    = 1500 * time.Millisecond
	minDuration = 2 * time.Second
	maxDuration = 4 * time.Second
	minSize     = 6
	maxSize     = 16

	// Lifetime is when the whole burst is cleared.
	Lifetime = 5 * time.Second
)

// Palette is the set of colors a piece may take.
var Palette = []color.Color{
	lipgloss.Color("#3B82F6"),
	lipgloss.Color("#7C3AED"),
	lipgloss.Color("#EC4899"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#F97316"),
	lipgloss.Color("#06B6D4"),
	lipgloss.Color("#F43F5E"),
	lipgloss.Color("#EAB308"),
}

// Piece is a single falling confetti piece.
type Piece struct {
	Color color.Color
	// X is the horizontal position as a fraction of the width, in [0, 1).
	X        float64
	Delay    time.Duration
	Duration time.Duration
	Size     int
	Round    bool
}

// Burst creates n pieces from rng.
func Burst(rng *rand.Rand, n int) []Piece {
	pieces := make([]Piece, n)
	for i := range pieces {
		pieces[i] = Piece{
			Color:    Palette[rng.IntN(len(Palette))],
			X:        rng.Float64(),
			Delay:    time.Duration(rng.Int64N(int64(maxDelay))),
			Duration: minDuration + time.Duration(rng.Int64N(int64(maxDuration-minDuration))),
			Size:     minSize + rng.IntN(maxSize-minSize),
			Round:    rng.IntN(2) == 0,
		}
	}
	return pieces
}

// Done reports whether the burst should be cleared.
func Done(elapsed time.Duration) bool {
	return elapsed >= Lifetime
}

// InFlight reports whether p is visible at elapsed.
func (p Piece) InFlight(elapsed time.Duration) bool {
	return elapsed >= p.Delay && elapsed < p.Delay+p.Duration
}

// Position returns the cell of p at elapsed inside a width x height area.
func (p Piece) Position(elapsed time.Duration, width, height int) (col, row int) {
	progress := float64(elapsed-p.Delay) / float64(p.Duration)
	col = min(int(p.X*float64(width)), width-1)
	row = min(int(progress*float64(height)), height-1)
	return max(col, 0), max(row, 0)
}

func (p Piece) glyph() string {
	large := p.Size >= (minSize+maxSize)/2
	switch {
	case p.Round && large:
		return "●"
	case p.Round:
		return "•"
	case large:
		return "■"
	default:
		return "▪"
	}
}

// Render draws the pieces in flight at elapsed as height lines of width
// cells. Later pieces overwrite earlier ones sharing a cell.
func Render(pieces []Piece, width, height int, elapsed time.Duration) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	if !Done(elapsed) {
		for _, p := range pieces {
			if !p.InFlight(elapsed) {
				continue
			}
			col, row := p.Position(elapsed, width, height)
			grid[row][col] = lipgloss.NewStyle().Foreground(p.Color).Render(p.glyph())
		}
	}

	lines := make([]string, height)
	for r, cells := range grid {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}
