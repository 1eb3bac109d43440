package models

import "testing"

func TestAllBudgetCategories(t *testing.T) {
	categories := AllBudgetCategories()
	if len(categories) != 9 {
		t.Fatalf("expected 9 budget categories, got %d", len(categories))
	}

	for _, category := range categories {
		if !IsValidBudgetCategory(category) {
			t.Errorf("category %s from AllBudgetCategories is not valid", category)
		}
	}
}

func TestIsValidBudgetCategory_Invalid(t *testing.T) {
	for _, category := range []string{"", "venue", "Food & Beverage", "SNACKS"} {
		if IsValidBudgetCategory(category) {
			t.Errorf("category %q should not be valid", category)
		}
	}
}

func TestIsValidSourceModule(t *testing.T) {
	for _, module := range AllSourceModules() {
		if !IsValidSourceModule(module) {
			t.Errorf("module %s from AllSourceModules is not valid", module)
		}
	}

	for _, module := range []string{"", "Program", "MANUAL", "spreadsheet"} {
		if IsValidSourceModule(module) {
			t.Errorf("module %q should not be valid", module)
		}
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryDisplayName(CategoryFoodBeverage); got != "Food & Beverage" {
		t.Errorf("expected 'Food & Beverage', got %q", got)
	}
	if got := CategoryDisplayName(CategoryPhotographyVideo); got != "Photography/Video" {
		t.Errorf("expected 'Photography/Video', got %q", got)
	}
	if got := CategoryDisplayName("UNKNOWN"); got != "Miscellaneous" {
		t.Errorf("unknown category should fall back to Miscellaneous, got %q", got)
	}
}
