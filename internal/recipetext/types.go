// Package recipetext turns the free-text recipe suggestions returned by the
// model into structured records and cross-checks them against the pantry.
// It is pure string processing: no I/O, no database, no clock.
package recipetext

// IngredientMention is a loosely parsed fragment of one model output line.
// Quantity and Unit are best-effort string extractions and may be empty.
type IngredientMention struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Available bool   `json:"available"`
}

// ParsedRecipe is one recipe extracted from a model response. It lives for
// the duration of a single generation cycle and is never persisted.
type ParsedRecipe struct {
	Name                 string              `json:"name"`
	MatchScore           int                 `json:"match_score"`
	AvailableIngredients []IngredientMention `json:"available_ingredients"`
	MissingIngredients   []IngredientMention `json:"missing_ingredients"`
	Instructions         []string            `json:"instructions"`
	CookingTime          string              `json:"cooking_time,omitempty"`
	Difficulty           string              `json:"difficulty,omitempty"`
}

// Ingredients returns the full ingredient list, available first.
func (r ParsedRecipe) Ingredients() []IngredientMention {
	out := make([]IngredientMention, 0, len(r.AvailableIngredients)+len(r.MissingIngredients))
	out = append(out, r.AvailableIngredients...)
	out = append(out, r.MissingIngredients...)
	return out
}
