package extract

import (
	"testing"
)

func TestExtractShoppingItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []ShoppingItem
	}{
		{
			name: "single bullet item with buy keyword",
			text: "Buy: - 2 cups flour",
			want: []ShoppingItem{
				{Name: "flour", Quantity: 2, Unit: "cups"},
			},
		},
		{
			name: "no shopping keyword",
			text: "Hello world",
			want: nil,
		},
		{
			name: "bullet lines without keyword are skipped",
			text: "- 2 cups flour\n- 1 kg sugar",
			want: nil,
		},
		{
			name: "multiple lines in order",
			text: "Your shopping list:\n- 2 cups flour\n- 1.5 kg sugar\n* 3 pieces onion",
			want: []ShoppingItem{
				{Name: "flour", Quantity: 2, Unit: "cups"},
				{Name: "sugar", Quantity: 1.5, Unit: "kg"},
				{Name: "onion", Quantity: 3, Unit: "pieces"},
			},
		},
		{
			name: "trailing dash is cut from name",
			text: "shopping list\n- 2 cups flour - for the cake",
			want: []ShoppingItem{
				{Name: "flour", Quantity: 2, Unit: "cups"},
			},
		},
		{
			name: "unit is lower-cased",
			text: "buy\n- 2 Cups flour",
			want: []ShoppingItem{
				{Name: "flour", Quantity: 2, Unit: "cups"},
			},
		},
		{
			name: "non matching lines contribute nothing",
			text: "shopping\nget some flour\n- 2 cups flour",
			want: []ShoppingItem{
				{Name: "flour", Quantity: 2, Unit: "cups"},
			},
		},
		{
			name: "quantity without bullet does not match",
			text: "buy 2kg chicken",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractShoppingItems(tt.text)

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
