// Package extract holds the heuristic text parsers applied to assistant
// replies. All functions are pure and deterministic; they operate on raw
// message text and perform no normalization beyond what each rule states.
package extract

import "strings"

var recipeKeywords = []string{"recipe", "ingredient", "cook", "bake"}

// IsRecipe reports whether a message should be flagged as containing a
// recipe. Only bot messages qualify; matching is a case-insensitive
// substring check with no word-boundary requirement.
func IsRecipe(text string, fromBot bool) bool {
	if !fromBot {
		return false
	}

	lower := strings.ToLower(text)
	for _, kw := range recipeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
