package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ShoppingItem is a structured purchase suggestion parsed from free text.
type ShoppingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
}

// Bullet marker, decimal quantity, unit token, then the item name up to an
// optional trailing dash. Deliberately narrow; see ExtractShoppingItems.
var shoppingItemPattern = regexp.MustCompile(`(?i)[-*]\s*(\d+(?:\.\d+)?)\s*(\w+)\s+(.+?)(?:\s*-|$)`)

// ExtractShoppingItems scans a message for bullet lines shaped like
// "- 2 cups flour" and returns them in line order. The whole message is
// skipped unless it mentions "shopping" or "buy". Lines that do not match
// the pattern contribute nothing; no deduplication is performed.
//
// The pattern is known to drop phrasings like "2kg chicken" or
// "a dozen eggs". That narrowness is intentional and relied upon by
// callers; widening it changes which suggestions users see.
func ExtractShoppingItems(text string) []ShoppingItem {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "shopping") && !strings.Contains(lower, "buy") {
		return nil
	}

	var items []ShoppingItem
	for _, line := range strings.Split(text, "\n") {
		m := shoppingItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		quantity, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		items = append(items, ShoppingItem{
			Name:     strings.TrimSpace(m[3]),
			Quantity: quantity,
			Unit:     strings.ToLower(m[2]),
		})
	}

	return items
}
