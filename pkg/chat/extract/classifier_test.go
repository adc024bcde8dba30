package extract

import (
	"testing"
)

func TestIsRecipe(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		fromBot bool
		want    bool
	}{
		{
			name:    "bot message with recipe keyword",
			text:    "Here is a great recipe for pasta",
			fromBot: true,
			want:    true,
		},
		{
			name:    "bot message with uppercase keyword",
			text:    "RECIPE: chocolate cake",
			fromBot: true,
			want:    true,
		},
		{
			name:    "bot message with ingredient keyword",
			text:    "The main ingredient is flour",
			fromBot: true,
			want:    true,
		},
		{
			name:    "bot message with cook keyword",
			text:    "Cook for 20 minutes",
			fromBot: true,
			want:    true,
		},
		{
			name:    "bot message with bake keyword",
			text:    "Bake at 180C",
			fromBot: true,
			want:    true,
		},
		{
			name:    "keyword inside another word counts",
			text:    "I use a pressure cooker daily",
			fromBot: true,
			want:    true,
		},
		{
			name:    "bot message without keywords",
			text:    "The weather is nice today",
			fromBot: true,
			want:    false,
		},
		{
			name:    "user message with recipe keyword",
			text:    "Give me a recipe for bread",
			fromBot: false,
			want:    false,
		},
		{
			name:    "empty text",
			text:    "",
			fromBot: true,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecipe(tt.text, tt.fromBot)
			if got != tt.want {
				t.Errorf("IsRecipe(%q, %v) = %v, want %v", tt.text, tt.fromBot, got, tt.want)
			}
		})
	}
}
