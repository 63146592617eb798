package recipetext

import (
	"regexp"
	"strings"
)

// quantityPattern matches a leading quantity token: digits, unicode fraction
// characters, decimal points and simple fractions like 1/2 or 1.5.
var quantityPattern = regexp.MustCompile(`^([0-9¼½¾⅓⅔⅛]+(?:[./][0-9]+)?)\s*`)

// unitVocabulary holds recognized unit words with any trailing "s" removed.
// Matching is case-insensitive with an optional trailing "s" on the token.
var unitVocabulary = map[string]struct{}{
	"cup":        {},
	"tablespoon": {},
	"teaspoon":   {},
	"tbsp":       {},
	"tsp":        {},
	"g":          {},
	"ml":         {},
	"l":          {},
	"oz":         {},
	"pound":      {},
	"lb":         {},
	"kg":         {},
}

// parseMention decomposes one ingredient content line into a mention. A
// leading bullet marker is dropped, then a quantity token, then a unit word
// from the fixed vocabulary; a leading "of" before the name is stripped.
// Lines that reduce to an empty name are rejected.
func parseMention(line string, available bool) (IngredientMention, bool) {
	// Unlike stripBullet this keeps nothing when the line is only a marker,
	// so a bare "-" cannot become an ingredient name.
	rest := strings.TrimSpace(strings.TrimLeft(line, "-• \t"))

	mention := IngredientMention{Available: available}
	if m := quantityPattern.FindStringSubmatch(rest); m != nil {
		mention.Quantity = m[1]
		rest = strings.TrimSpace(rest[len(m[0]):])

		// Unit words are only recognized directly after a quantity token, so
		// an ingredient like "Pound cake mix" keeps its full name.
		if word, remainder := firstWord(rest); word != "" && isUnit(word) {
			mention.Unit = word
			rest = remainder
		}
	}

	rest = strings.TrimSpace(rest)
	if lower := strings.ToLower(rest); lower == "of" {
		rest = ""
	} else if strings.HasPrefix(lower, "of ") {
		rest = strings.TrimSpace(rest[3:])
	}

	mention.Name = rest
	if mention.Name == "" {
		return IngredientMention{}, false
	}
	return mention, true
}

func firstWord(s string) (word, remainder string) {
	fields := strings.SplitN(s, " ", 2)
	if len(fields) == 0 {
		return "", ""
	}
	word = strings.TrimSpace(fields[0])
	if len(fields) == 2 {
		remainder = strings.TrimSpace(fields[1])
	}
	return word, remainder
}

func isUnit(word string) bool {
	w := strings.TrimSuffix(strings.ToLower(word), "s")
	_, ok := unitVocabulary[w]
	return ok
}
