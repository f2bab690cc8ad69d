package category

// Category is one label in the closed classification set for happy moments.
type Category string

const (
	Achievement    Category = "achievement"
	Affection      Category = "affection"
	EnjoyTheMoment Category = "enjoy_the_moment"
	Bonding        Category = "bonding"
	Leisure        Category = "leisure"
	Nature         Category = "nature"
	Exercise       Category = "exercise"
)

// all is the single source of truth for the category set and its order.
// The prompt's category list and the schema's enum are both derived
// from it, never written out by hand.
var all = []Category{
	Achievement,
	Affection,
	EnjoyTheMoment,
	Bonding,
	Leisure,
	Nature,
	Exercise,
}

// All returns the categories in declaration order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}

// Strings returns the category values as plain strings, in declaration order.
func Strings() []string {
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = string(c)
	}
	return out
}

// IsValid reports whether s is a member of the category set.
func IsValid(s string) bool {
	for _, c := range all {
		if string(c) == s {
			return true
		}
	}
	return false
}
