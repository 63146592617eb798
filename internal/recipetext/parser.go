package recipetext

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// RecipeDelimiter separates recipe blocks in the model response. The prompt
// instructs the model to start every recipe with this token.
const RecipeDelimiter = "RECIPE:"

// section is the parser's current position inside a recipe block. Lines that
// are not headers are routed to whichever section is active; sectionNone
// drops everything before the first header and sectionUnknown drops the
// content of unrecognized headers.
type section int

const (
	sectionNone section = iota
	sectionTitle
	sectionMatch
	sectionCookingTime
	sectionDifficulty
	sectionAvailable
	sectionMissing
	sectionInstructions
	sectionUnknown
)

var sectionByHeader = map[string]section{
	"title":                 sectionTitle,
	"match":                 sectionMatch,
	"cooking time":          sectionCookingTime,
	"difficulty":            sectionDifficulty,
	"available ingredients": sectionAvailable,
	"missing ingredients":   sectionMissing,
	"instructions":          sectionInstructions,
}

var digitsPattern = regexp.MustCompile(`\d+`)

// Parse converts an untrusted block of model output into zero or more
// recipes. Malformed blocks are skipped, never reported: the worst case for
// any input is an empty result. Accepted recipes are sorted by descending
// match score; ties keep their original order.
func Parse(raw string) []ParsedRecipe {
	blocks := strings.Split(raw, RecipeDelimiter)
	if len(blocks) < 2 {
		// No delimiter at all means the model produced no recipes.
		return []ParsedRecipe{}
	}

	recipes := make([]ParsedRecipe, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		if recipe, ok := parseBlock(block); ok {
			recipes = append(recipes, recipe)
		}
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].MatchScore > recipes[j].MatchScore
	})
	return recipes
}

// parseBlock parses a single candidate recipe. A panic while parsing skips
// the block and lets the remaining blocks continue.
func parseBlock(block string) (recipe ParsedRecipe, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	state := blockState{recipe: ParsedRecipe{
		AvailableIngredients: []IngredientMention{},
		MissingIngredients:   []IngredientMention{},
		Instructions:         []string{},
	}}

	current := sectionNone
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if header, rest, isHeader := splitHeader(line); isHeader {
			sec, known := sectionByHeader[header]
			if !known {
				sec = sectionUnknown
			}
			current = sec
			if rest != "" {
				state.apply(current, rest)
			}
			continue
		}

		state.apply(current, line)
	}

	recipe = state.recipe
	if recipe.Name == "" {
		return recipe, false
	}
	if len(recipe.AvailableIngredients)+len(recipe.MissingIngredients) == 0 {
		return recipe, false
	}
	return recipe, true
}

// splitHeader reports whether the line is a section header. A header contains
// a colon and does not start with a list bullet; the text before the first
// colon is the lower-cased section name and anything after it is the first
// content line of that section.
func splitHeader(line string) (name, rest string, ok bool) {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		return "", "", false
	}
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(line[:idx]))
	rest = strings.TrimSpace(line[idx+1:])
	return name, rest, true
}

// blockState accumulates one recipe while its lines are consumed. scoreSeen
// tells an explicit "Match: 0" apart from a score never parsed, so digits on
// a later line of the same section cannot overwrite it.
type blockState struct {
	recipe    ParsedRecipe
	scoreSeen bool
}

func (s *blockState) apply(current section, text string) {
	recipe := &s.recipe
	switch current {
	case sectionTitle:
		if recipe.Name == "" {
			recipe.Name = text
		}
	case sectionMatch:
		if s.scoreSeen {
			return
		}
		if digits := digitsPattern.FindString(text); digits != "" {
			if score, err := strconv.Atoi(digits); err == nil {
				recipe.MatchScore = score
				s.scoreSeen = true
			}
		}
	case sectionCookingTime:
		if recipe.CookingTime == "" {
			recipe.CookingTime = text
		}
	case sectionDifficulty:
		if recipe.Difficulty == "" {
			recipe.Difficulty = text
		}
	case sectionAvailable:
		if m, ok := parseMention(text, true); ok {
			recipe.AvailableIngredients = append(recipe.AvailableIngredients, m)
		}
	case sectionMissing:
		if m, ok := parseMention(text, false); ok {
			recipe.MissingIngredients = append(recipe.MissingIngredients, m)
		}
	case sectionInstructions:
		recipe.Instructions = append(recipe.Instructions, stripBullet(text))
	}
}

func stripBullet(line string) string {
	trimmed := strings.TrimLeft(line, "-• \t")
	if trimmed == "" {
		return line
	}
	return trimmed
}
