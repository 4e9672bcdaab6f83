package quiz

import "github.com/abhisek/futureme/internal/catalog"

// runnerUpCareers is how many of the runner-up's careers are suggested.
const runnerUpCareers = 2

// SuggestedCareer is a career chip on the result screen.
type SuggestedCareer struct {
	catalog.Career
	Category    catalog.Category
	Highlighted bool // true for the top category's careers
}

// Result is the ranked outcome of a completed session.
type Result struct {
	Top             catalog.Category
	RunnerUp        catalog.Category
	TopProfile      catalog.Profile
	RunnerUpProfile catalog.Profile
	Scores          Scores
	Percentages     map[catalog.Category]int
	TotalAnswered   int
	// Careers lists the top profile's careers followed by the first
	// runnerUpCareers of the runner-up profile.
	Careers []SuggestedCareer
}

// BuildResult ranks scores and attaches the matching catalog profiles.
func BuildResult(scores Scores) Result {
	top, runnerUp := RankCategories(scores)
	topProfile := catalog.MustLookup(top)
	runnerUpProfile := catalog.MustLookup(runnerUp)

	careers := make([]SuggestedCareer, 0, len(topProfile.Careers)+runnerUpCareers)
	for _, c := range topProfile.Careers {
		careers = append(careers, SuggestedCareer{Career: c, Category: top, Highlighted: true})
	}
	for i, c := range runnerUpProfile.Careers {
		if i == runnerUpCareers {
			break
		}
		careers = append(careers, SuggestedCareer{Career: c, Category: runnerUp})
	}

	return Result{
		Top:             top,
		RunnerUp:        runnerUp,
		TopProfile:      topProfile,
		RunnerUpProfile: runnerUpProfile,
		Scores:          scores.Clone(),
		Percentages:     Percentages(scores),
		TotalAnswered:   scores.Total(),
		Careers:         careers,
	}
}
