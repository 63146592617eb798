package recipetext

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInventory is returned when a prompt is requested for an empty
// pantry. No request should be sent to the model in that case.
var ErrEmptyInventory = errors.New("no ingredients in inventory")

// PantryItem is the slice of an ingredient record the prompt needs.
type PantryItem struct {
	Name     string
	Quantity float64
	Unit     string
}

// BuildPrompt formats the pantry into the instruction the model is expected
// to answer with exactly five recipes in the labeled template that Parse
// understands. The model is not guaranteed to honor the template; Parse is
// responsible for coping when it does not.
func BuildPrompt(items []PantryItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyInventory
	}

	var b strings.Builder
	b.WriteString("I have the following ingredients in my fridge:\n")
	for _, item := range items {
		if item.Quantity > 0 && item.Unit != "" {
			fmt.Fprintf(&b, "- %g %s %s\n", item.Quantity, item.Unit, item.Name)
		} else {
			fmt.Fprintf(&b, "- %s\n", item.Name)
		}
	}

	b.WriteString(`
Suggest exactly 5 recipes I could cook. For each recipe use exactly this format:

RECIPE:
Title: <recipe name>
Match: <percentage of ingredients I already have, 0-100>
Available Ingredients:
- <quantity> <unit> <ingredient I already have>
Missing Ingredients:
- <quantity> <unit> <ingredient I need to buy>
Instructions:
- <step>
Cooking Time: <total time>
Difficulty: <Easy/Medium/Hard>

Order the recipes from highest to lowest match. Do not add any text outside this format.`)

	return b.String(), nil
}
