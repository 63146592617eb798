package recipetext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMention(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantQty  string
		wantUnit string
	}{
		{name: "quantity and unit", line: "2 cups Flour", wantName: "Flour", wantQty: "2", wantUnit: "cups"},
		{name: "quantity only", line: "3 Eggs", wantName: "Eggs", wantQty: "3"},
		{name: "name only", line: "Salt", wantName: "Salt"},
		{name: "decimal quantity", line: "1.5 kg Potatoes", wantName: "Potatoes", wantQty: "1.5", wantUnit: "kg"},
		{name: "fraction quantity", line: "1/2 tsp Vanilla", wantName: "Vanilla", wantQty: "1/2", wantUnit: "tsp"},
		{name: "unicode fraction", line: "½ cup Milk", wantName: "Milk", wantQty: "½", wantUnit: "cup"},
		{name: "leading of stripped", line: "2 cups of Sugar", wantName: "Sugar", wantQty: "2", wantUnit: "cups"},
		{name: "bullet marker stripped", line: "- 1 lb Chicken", wantName: "Chicken", wantQty: "1", wantUnit: "lb"},
		{name: "unit casing ignored", line: "200 G Butter", wantName: "Butter", wantQty: "200", wantUnit: "G"},
		{name: "plural unit variant", line: "2 tablespoons Olive Oil", wantName: "Olive Oil", wantQty: "2", wantUnit: "tablespoons"},
		{name: "unit word inside name kept", line: "Pound cake mix", wantName: "Pound cake mix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mention, ok := parseMention(tt.line, true)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, mention.Name)
			assert.Equal(t, tt.wantQty, mention.Quantity)
			assert.Equal(t, tt.wantUnit, mention.Unit)
			assert.True(t, mention.Available)
		})
	}

	t.Run("empty name rejected", func(t *testing.T) {
		_, ok := parseMention("2 cups", true)
		assert.False(t, ok)

		_, ok = parseMention("- ", false)
		assert.False(t, ok)
	})
}
