package catalog

// Category identifies one of the five personality archetypes.
type Category string

const (
	Analytical Category = "analytical"
	Creative   Category = "creative"
	Social     Category = "social"
	Technical  Category = "technical"
	Sports     Category = "sports"
)

// All returns every category in declared order. Ranking ties are broken
// by this order.
func All() []Category {
	return []Category{Analytical, Creative, Social, Technical, Sports}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	switch c {
	case Analytical, Creative, Social, Technical, Sports:
		return true
	default:
		return false
	}
}

// Index returns the position of c in declared order, or -1.
func (c Category) Index() int {
	for i, cat := range All() {
		if cat == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	return string(c)
}
