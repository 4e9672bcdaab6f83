package quiz

import (
	"maps"
	"math"

	"github.com/abhisek/futureme/internal/catalog"
)

// Scores maps every category to the number of answers that chose it.
type Scores map[catalog.Category]int

// NewScores returns zero scores with an entry for every category.
func NewScores() Scores {
	s := make(Scores, len(catalog.All()))
	for _, c := range catalog.All() {
		s[c] = 0
	}
	return s
}

// Clone returns an independent copy.
func (s Scores) Clone() Scores {
	return maps.Clone(s)
}

// Total returns the sum over all categories.
func (s Scores) Total() int {
	var total int
	for _, v := range s {
		total += v
	}
	return total
}

// ComputeScores recounts answers from scratch: one point per answered
// question to the category of the chosen option. Unanswered or out-of-range
// entries are skipped.
func ComputeScores(questions []catalog.Question, answers []int) Scores {
	scores := NewScores()
	for qi, ai := range answers {
		if ai == Unanswered || qi >= len(questions) {
			continue
		}
		opts := questions[qi].Options
		if ai < 0 || ai >= len(opts) {
			continue
		}
		scores[opts[ai].Category]++
	}
	return scores
}

// RankCategories returns the highest scoring category and the highest of
// the remaining four. Ties go to the category declared first.
func RankCategories(scores Scores) (top, runnerUp catalog.Category) {
	top = bestOf(scores, "")
	runnerUp = bestOf(scores, top)
	return top, runnerUp
}

// bestOf walks categories in declared order and keeps the current best only
// when a later one is strictly greater.
func bestOf(scores Scores, exclude catalog.Category) catalog.Category {
	var best catalog.Category
	found := false
	for _, c := range catalog.All() {
		if c == exclude {
			continue
		}
		if !found || scores[c] > scores[best] {
			best = c
			found = true
		}
	}
	return best
}

// Percentages returns round(score/total*100) per category, or zero for all
// when nothing was answered. Values are rounded independently and need not
// sum to 100.
func Percentages(scores Scores) map[catalog.Category]int {
	total := scores.Total()
	out := make(map[catalog.Category]int, len(catalog.All()))
	for _, c := range catalog.All() {
		if total == 0 {
			out[c] = 0
			continue
		}
		out[c] = int(math.Round(float64(scores[c]) / float64(total) * 100))
	}
	return out
}
