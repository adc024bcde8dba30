package service

import (
	"testing"
)

func TestIngredientNameFromLine(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "2 cups maize flour", want: "maize flour"},
		{line: "500 g beef", want: "beef"},
		{line: "1.5 l milk", want: "milk"},
		{line: "3 tomatoes", want: "tomatoes"},
		{line: "salt", want: "salt"},
		{line: "1 can coconut milk", want: "coconut milk"},
		{line: "2 tbsp cooking oil", want: "cooking oil"},
		{line: "", want: ""},
		{line: "4", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ingredientNameFromLine(tt.line); got != tt.want {
				t.Errorf("ingredientNameFromLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
