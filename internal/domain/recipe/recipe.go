// Package recipe defines the recipe domain types and the static catalog data
package recipe

// Difficulty represents how demanding a recipe is to prepare
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Recipe represents a single dish suggestion tied to a mood tag.
// The canonical record is always English; localized display fields come
// from the translation overlay at resolution time.
type Recipe struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Ingredients     string     `json:"ingredients"`
	Instructions    string     `json:"instructions"`
	Mood            string     `json:"mood"`
	PrepTimeMinutes int        `json:"prep_time"`
	Difficulty      Difficulty `json:"difficulty"`
}

// Localized returns a copy of the recipe with the display fields replaced
// by the overlay entry for the given language, when one exists. The merge
// is non-destructive: id, mood, prep time and difficulty always stay
// canonical.
func (r Recipe) Localized(language string) Recipe {
	overlay, ok := lookupOverlay(language, r.Name)
	if !ok {
		return r
	}

	r.Name = overlay.Name
	r.Ingredients = overlay.Ingredients
	r.Instructions = overlay.Instructions
	return r
}
