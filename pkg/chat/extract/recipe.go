package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultRecipeName is used when no title line is found.
	DefaultRecipeName = "AI Recipe"
	// DefaultRecipeDescription is used when no free-standing line precedes
	// the section headings.
	DefaultRecipeDescription = "Recipe from AI Assistant"
)

// Recipe holds the structured fields parsed out of an assistant reply.
type Recipe struct {
	Name            string
	Description     string
	Ingredients     []string
	Instructions    string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
}

type recipeSection int

const (
	sectionNone recipeSection = iota
	sectionIngredients
	sectionInstructions
)

var firstIntPattern = regexp.MustCompile(`\d+`)

func firstInt(s string) *int {
	m := firstIntPattern.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "*", "")
	return strings.TrimSpace(s)
}

func stripBullet(s string) (string, bool) {
	for _, marker := range []string{"-", "*", "•"} {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
		}
	}
	return s, false
}

// isSectionHeading reports whether a line introduces a new section. A bare
// keyword mention inside prose (e.g. "Mix ingredients.") must not flip the
// section, so headings are required to end with a colon.
func isSectionHeading(lower string, keywords ...string) bool {
	if !strings.HasSuffix(lower, ":") {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractRecipeFromMessage parses a free-form assistant reply into a
// structured recipe using a single-pass, line-oriented state machine. The
// heuristics are intentionally simple and may misread pathological input.
func ExtractRecipeFromMessage(text string) Recipe {
	recipe := Recipe{}
	section := sectionNone

	var instructions strings.Builder

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		// Title: first line mentioning "Recipe", short, and not an
		// ingredients heading.
		if recipe.Name == "" &&
			strings.Contains(line, "Recipe") &&
			len(line) < 100 &&
			!strings.Contains(lower, "ingredient") {
			recipe.Name = stripMarkdown(line)
			continue
		}

		switch {
		case isSectionHeading(lower, "ingredient"):
			section = sectionIngredients
		case isSectionHeading(lower, "instruction", "direction"):
			section = sectionInstructions
		case strings.Contains(lower, "prep time"):
			recipe.PrepTimeMinutes = firstInt(line)
		case strings.Contains(lower, "cook time"):
			recipe.CookTimeMinutes = firstInt(line)
		case strings.Contains(lower, "serving"):
			recipe.Servings = firstInt(line)
		default:
			switch section {
			case sectionIngredients:
				if stripped, ok := stripBullet(line); ok {
					recipe.Ingredients = append(recipe.Ingredients, stripped)
				}
			case sectionInstructions:
				if line != "" {
					instructions.WriteString(line)
					instructions.WriteString("\n")
				}
			case sectionNone:
				if line != "" && recipe.Description == "" {
					recipe.Description = line
				}
			}
		}
	}

	recipe.Instructions = strings.TrimRight(instructions.String(), " \t\n")

	if recipe.Name == "" {
		recipe.Name = DefaultRecipeName
	}
	if recipe.Description == "" {
		recipe.Description = DefaultRecipeDescription
	}

	return recipe
}
