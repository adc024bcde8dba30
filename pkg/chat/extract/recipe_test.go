package extract

import (
	"testing"
)

func TestExtractRecipeFromMessage(t *testing.T) {
	text := "Chocolate Chip Recipe\n" +
		"A delicious treat\n" +
		"Prep time: 15 minutes\n" +
		"Ingredients:\n" +
		"- 2 cups flour\n" +
		"- 1 cup sugar\n" +
		"Instructions:\n" +
		"Mix ingredients.\n" +
		"Bake at 350F."

	recipe := ExtractRecipeFromMessage(text)

	if recipe.Name != "Chocolate Chip Recipe" {
		t.Errorf("Name = %q, want %q", recipe.Name, "Chocolate Chip Recipe")
	}
	if recipe.Description != "A delicious treat" {
		t.Errorf("Description = %q, want %q", recipe.Description, "A delicious treat")
	}
	if recipe.PrepTimeMinutes == nil || *recipe.PrepTimeMinutes != 15 {
		t.Errorf("PrepTimeMinutes = %v, want 15", recipe.PrepTimeMinutes)
	}
	wantIngredients := []string{"2 cups flour", "1 cup sugar"}
	if len(recipe.Ingredients) != len(wantIngredients) {
		t.Fatalf("Ingredients = %v, want %v", recipe.Ingredients, wantIngredients)
	}
	for i := range wantIngredients {
		if recipe.Ingredients[i] != wantIngredients[i] {
			t.Errorf("Ingredients[%d] = %q, want %q", i, recipe.Ingredients[i], wantIngredients[i])
		}
	}
	if recipe.Instructions != "Mix ingredients.\nBake at 350F." {
		t.Errorf("Instructions = %q", recipe.Instructions)
	}
}

func TestExtractRecipeDefaults(t *testing.T) {
	recipe := ExtractRecipeFromMessage("")

	if recipe.Name != DefaultRecipeName {
		t.Errorf("Name = %q, want %q", recipe.Name, DefaultRecipeName)
	}
	if recipe.Description != DefaultRecipeDescription {
		t.Errorf("Description = %q, want %q", recipe.Description, DefaultRecipeDescription)
	}
	if len(recipe.Ingredients) != 0 {
		t.Errorf("Ingredients = %v, want empty", recipe.Ingredients)
	}
	if recipe.Instructions != "" {
		t.Errorf("Instructions = %q, want empty", recipe.Instructions)
	}
}

func TestExtractRecipeTitleRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "markdown markers stripped",
			text: "## Pancake Recipe ##",
			want: "Pancake Recipe",
		},
		{
			name: "lowercase recipe does not match title",
			text: "this recipe is great",
			want: DefaultRecipeName,
		},
		{
			name: "line mentioning ingredient is not a title",
			text: "Recipe ingredient overview",
			want: DefaultRecipeName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := ExtractRecipeFromMessage(tt.text)
			if recipe.Name != tt.want {
				t.Errorf("Name = %q, want %q", recipe.Name, tt.want)
			}
		})
	}
}

func TestExtractRecipeTimesAndServings(t *testing.T) {
	text := "Stew Recipe\n" +
		"Cook time: 45 minutes\n" +
		"Servings: 4\n" +
		"Directions:\n" +
		"Simmer gently."

	recipe := ExtractRecipeFromMessage(text)

	if recipe.CookTimeMinutes == nil || *recipe.CookTimeMinutes != 45 {
		t.Errorf("CookTimeMinutes = %v, want 45", recipe.CookTimeMinutes)
	}
	if recipe.Servings == nil || *recipe.Servings != 4 {
		t.Errorf("Servings = %v, want 4", recipe.Servings)
	}
	if recipe.Instructions != "Simmer gently." {
		t.Errorf("Instructions = %q", recipe.Instructions)
	}
}
