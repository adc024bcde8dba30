package prompt

import (
	"strings"
	"testing"
)

func TestBuildWithEmptyContextReturnsInputUnchanged(t *testing.T) {
	input := "What can I cook tonight?"
	got := Build(input, Context{})
	if got != input {
		t.Errorf("Build = %q, want raw input unchanged", got)
	}
}

func TestBuildContextSections(t *testing.T) {
	severity := "severe"
	c := Context{
		Pantry: []PantryEntry{
			{Name: "flour", Quantity: 2, Unit: "kg"},
			{Name: "milk", Quantity: 1.5, Unit: "liters", ExpiryDate: "2026-09-03"},
		},
		Allergies: []AllergyEntry{
			{Allergy: "nuts", Severity: severity},
			{Allergy: "dairy"},
		},
		Restrictions: []string{"no pork"},
		Household:    &Household{Size: 4, Country: "Kenya", Currency: "KES"},
	}

	block := BuildContext(c)

	wantFragments := []string{
		"User's Current Pantry:\n",
		"- flour: 2 kg\n",
		"- milk: 1.5 liters (expires: 2026-09-03)\n",
		"User's Allergies:\n",
		"- nuts (severe)\n",
		"- dairy\n",
		"User's Dietary Restrictions:\n",
		"- no pork\n",
		"Household Information:\n- Household size: 4\n- Country: Kenya\n- Currency: KES\n",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(block, fragment) {
			t.Errorf("context block missing %q\nblock: %q", fragment, block)
		}
	}

	// Fixed section order.
	pantryIdx := strings.Index(block, "User's Current Pantry:")
	allergyIdx := strings.Index(block, "User's Allergies:")
	restrictionIdx := strings.Index(block, "User's Dietary Restrictions:")
	householdIdx := strings.Index(block, "Household Information:")
	if !(pantryIdx < allergyIdx && allergyIdx < restrictionIdx && restrictionIdx < householdIdx) {
		t.Errorf("sections out of order: %d %d %d %d", pantryIdx, allergyIdx, restrictionIdx, householdIdx)
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	c := Context{
		Household: &Household{Size: 2, Country: "Kenya", Currency: "KES"},
	}

	block := BuildContext(c)

	for _, header := range []string{"User's Current Pantry:", "User's Allergies:", "User's Dietary Restrictions:"} {
		if strings.Contains(block, header) {
			t.Errorf("block should omit %q when its source is empty", header)
		}
	}
	if !strings.Contains(block, "Household Information:") {
		t.Errorf("household section missing: %q", block)
	}
}

func TestBuildAppendsInstruction(t *testing.T) {
	c := Context{Restrictions: []string{"vegetarian"}}
	got := Build("Dinner ideas?", c)

	if !strings.HasPrefix(got, "Dinner ideas?\n\n--- User Context ---") {
		t.Errorf("prompt prefix wrong: %q", got)
	}
	if !strings.HasSuffix(got, "use this information to give personalized advice.") {
		t.Errorf("prompt missing instruction sentence: %q", got)
	}
}
