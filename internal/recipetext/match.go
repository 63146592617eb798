package recipetext

import (
	"math"
	"strings"
)

// AvailabilityMatch recomputes how much of a recipe's full ingredient list
// the pantry covers, independent of the model's own available/missing split.
// An ingredient counts as available iff its lower-cased name exactly equals
// the lower-cased name of some pantry item. A recipe with no ingredients
// scores 0.
func AvailabilityMatch(recipe ParsedRecipe, pantry []string) int {
	mentions := recipe.Ingredients()
	if len(mentions) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(pantry))
	for _, name := range pantry {
		have[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	available := 0
	for _, m := range mentions {
		if _, ok := have[strings.ToLower(strings.TrimSpace(m.Name))]; ok {
			available++
		}
	}

	return int(math.Round(float64(available) / float64(len(mentions)) * 100))
}

// RankByAvailability orders recipes by descending availability percentage.
// Ties keep insertion order. The returned slice is a copy; the input is not
// modified.
func RankByAvailability(recipes []ParsedRecipe, pantry []string) []ParsedRecipe {
	ranked := make([]ParsedRecipe, len(recipes))
	copy(ranked, recipes)

	scores := make(map[int]int, len(ranked))
	for i, r := range ranked {
		scores[i] = AvailabilityMatch(r, pantry)
	}

	// Insertion sort keeps the tie-break stable without re-scoring.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && scores[j-1] < scores[j]; j-- {
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
			scores[j-1], scores[j] = scores[j], scores[j-1]
		}
	}
	return ranked
}
