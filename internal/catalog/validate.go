package catalog

import (
	"errors"
	"fmt"
)

// QuestionCount is the fixed length of the question bank.
const QuestionCount = 6

const (
	careersPerProfile = 3
	skillsPerProfile  = 5
)

// validateBank performs all structural checks on the bank.
// Returns a combined error describing every problem found, or nil if valid.
func validateBank(bank *Bank) error {
	var errs []error

	if len(bank.Questions) != QuestionCount {
		errs = append(errs, fmt.Errorf("expected %d questions, got %d", QuestionCount, len(bank.Questions)))
	}

	for qi, q := range bank.Questions {
		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("question %d has an empty prompt", qi+1))
		}
		if len(q.Options) != OptionsPerQuestion {
			errs = append(errs, fmt.Errorf("question %d has %d options, want %d", qi+1, len(q.Options), OptionsPerQuestion))
		}
		for oi, opt := range q.Options {
			if !opt.Category.Valid() {
				errs = append(errs, fmt.Errorf("question %d option %d has unknown category %q", qi+1, oi+1, opt.Category))
			}
		}
	}

	seen := make(map[Category]bool, len(bank.Profiles))
	for _, p := range bank.Profiles {
		if !p.ID.Valid() {
			errs = append(errs, fmt.Errorf("profile has unknown category %q", p.ID))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate profile for category %q", p.ID))
		}
		seen[p.ID] = true

		if len(p.Careers) != careersPerProfile {
			errs = append(errs, fmt.Errorf("profile %q has %d careers, want %d", p.ID, len(p.Careers), careersPerProfile))
		}
		if len(p.Skills) != skillsPerProfile {
			errs = append(errs, fmt.Errorf("profile %q has %d skills, want %d", p.ID, len(p.Skills), skillsPerProfile))
		}
	}
	for _, c := range All() {
		if !seen[c] {
			errs = append(errs, fmt.Errorf("missing profile for category %q", c))
		}
	}

	return errors.Join(errs...)
}
