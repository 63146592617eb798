package recipetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("empty inventory refused", func(t *testing.T) {
		_, err := BuildPrompt(nil)
		assert.ErrorIs(t, err, ErrEmptyInventory)
	})

	t.Run("lists ingredients and template fields", func(t *testing.T) {
		prompt, err := BuildPrompt([]PantryItem{
			{Name: "Flour", Quantity: 2, Unit: "cups"},
			{Name: "Eggs"},
		})
		require.NoError(t, err)

		assert.Contains(t, prompt, "- 2 cups Flour")
		assert.Contains(t, prompt, "- Eggs")
		assert.Contains(t, prompt, RecipeDelimiter)
		for _, label := range []string{"Title:", "Match:", "Available Ingredients:", "Missing Ingredients:", "Instructions:", "Cooking Time:", "Difficulty:"} {
			assert.Contains(t, prompt, label)
		}
	})

	t.Run("prompt round-trips through the parser", func(t *testing.T) {
		// A model that answers with the template verbatim must parse cleanly.
		raw := "RECIPE:\nTitle: Omelette\nMatch: 100\nAvailable Ingredients:\n- 3 Eggs\nMissing Ingredients:\n- 1 tbsp Butter\nInstructions:\n- Whisk\n- Fry\nCooking Time: 10 minutes\nDifficulty: Easy\n"
		recipes := Parse(raw)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Omelette", recipes[0].Name)
		assert.Equal(t, 100, recipes[0].MatchScore)
		assert.Len(t, recipes[0].Instructions, 2)
	})
}
