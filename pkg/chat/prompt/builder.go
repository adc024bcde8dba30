// Package prompt assembles the user-context block appended to chat input
// before it is forwarded to the remote assistant.
package prompt

import (
	"fmt"
	"strings"
)

const contextInstruction = "\n\nPlease consider the user's pantry items, dietary restrictions, and household information when providing your response. If the question is about what they have available, cooking suggestions, or meal planning, use this information to give personalized advice."

// PantryEntry is one pantry row as the assistant should see it.
type PantryEntry struct {
	Name       string
	Quantity   float64
	Unit       string
	ExpiryDate string
}

// AllergyEntry is one declared allergy with optional severity.
type AllergyEntry struct {
	Allergy  string
	Severity string
}

// Household is the profile summary section. Nil means no profile row exists
// and the section is omitted.
type Household struct {
	Size     int
	Country  string
	Currency string
}

// Context carries everything the builder serializes. Empty slices omit
// their section entirely.
type Context struct {
	Pantry       []PantryEntry
	Allergies    []AllergyEntry
	Restrictions []string
	Household    *Household
}

func (c Context) empty() bool {
	return len(c.Pantry) == 0 && len(c.Allergies) == 0 && len(c.Restrictions) == 0 && c.Household == nil
}

func formatQuantity(q float64) string {
	s := fmt.Sprintf("%g", q)
	return s
}

// BuildContext serializes the context into the fixed multi-section block:
// pantry, allergies, custom restrictions, household info. Sections with no
// data are omitted, headers included.
func BuildContext(c Context) string {
	var b strings.Builder

	if len(c.Pantry) > 0 {
		b.WriteString("\n\nUser's Current Pantry:\n")
		for _, item := range c.Pantry {
			b.WriteString(fmt.Sprintf("- %s: %s %s", item.Name, formatQuantity(item.Quantity), item.Unit))
			if item.ExpiryDate != "" {
				b.WriteString(fmt.Sprintf(" (expires: %s)", item.ExpiryDate))
			}
			b.WriteString("\n")
		}
	}

	if len(c.Allergies) > 0 {
		b.WriteString("\n\nUser's Allergies:\n")
		for _, allergy := range c.Allergies {
			b.WriteString(fmt.Sprintf("- %s", allergy.Allergy))
			if allergy.Severity != "" {
				b.WriteString(fmt.Sprintf(" (%s)", allergy.Severity))
			}
			b.WriteString("\n")
		}
	}

	if len(c.Restrictions) > 0 {
		b.WriteString("\n\nUser's Dietary Restrictions:\n")
		for _, restriction := range c.Restrictions {
			b.WriteString(fmt.Sprintf("- %s\n", restriction))
		}
	}

	if c.Household != nil {
		b.WriteString(fmt.Sprintf("\n\nHousehold Information:\n- Household size: %d\n- Country: %s\n- Currency: %s\n",
			c.Household.Size, c.Household.Country, c.Household.Currency))
	}

	return b.String()
}

// Build returns the enriched prompt: the raw input, the context block, and
// a fixed instruction sentence. With no context at all, the raw input is
// returned unchanged.
func Build(userInput string, c Context) string {
	if c.empty() {
		return userInput
	}

	contextBlock := BuildContext(c)
	return userInput + "\n\n--- User Context ---" + contextBlock + contextInstruction
}
