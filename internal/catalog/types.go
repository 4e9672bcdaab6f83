package catalog

// OptionsPerQuestion is the fixed number of answers offered by every question.
const OptionsPerQuestion = 5

// Option is a single answer to a question.
type Option struct {
	Icon     string   `json:"icon"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Question is a prompt with exactly OptionsPerQuestion options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Career is a suggested job shown on the result screen.
type Career struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// Profile is the display metadata for a category.
type Profile struct {
	ID         Category `json:"id"`
	Icon       string   `json:"icon"`
	Label      string   `json:"label"`
	Color      string   `json:"color"`
	Subtitle   string   `json:"subtitle"`
	Careers    []Career `json:"careers"` // ranked, best match first
	Skills     []string `json:"skills"`
	Motivation string   `json:"motivation"`
}

// DisplayName returns the icon and label, e.g. "🔬 Analytical".
func (p Profile) DisplayName() string {
	if p.Icon == "" {
		return p.Label
	}
	return p.Icon + " " + p.Label
}
