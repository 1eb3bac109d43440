package services

import (
	"strings"

	"reunion-planner/internal/models"
)

type categoryMapper struct {
	vendorPatterns map[string]string
	identitySet    map[string]string
}

// NewCategoryMapper creates a new CategoryMapperInterface instance
func NewCategoryMapper() CategoryMapperInterface {
	return &categoryMapper{
		vendorPatterns: initVendorPatterns(),
		identitySet:    initIdentitySet(),
	}
}

// Map returns the budget category for a domain category string. The function
// is total: every input maps to a valid category, with MISCELLANEOUS as the
// fallback for anything unrecognized.
func (m *categoryMapper) Map(sourceModule, domainCategory string) string {
	return m.MapWithResult(sourceModule, domainCategory).BudgetCategory
}

// MapWithResult returns the budget category together with match details
func (m *categoryMapper) MapWithResult(sourceModule, domainCategory string) *models.MappingResult {
	if domainCategory == "" {
		return &models.MappingResult{
			BudgetCategory: models.CategoryMiscellaneous,
			Matched:        false,
		}
	}

	normalized := normalizeCategory(domainCategory)

	switch sourceModule {
	case models.SourceModuleVendor:
		if category, ok := m.vendorPatterns[normalized]; ok {
			return &models.MappingResult{
				BudgetCategory: category,
				Matched:        true,
				MatchedPattern: "vendor:" + normalized,
			}
		}
	case models.SourceModuleProgram, models.SourceModuleFood, models.SourceModuleManual:
		// These modules already speak budget-category vocabulary; valid
		// values map identity-wise.
		if category, ok := m.identitySet[normalized]; ok {
			return &models.MappingResult{
				BudgetCategory: category,
				Matched:        true,
				MatchedPattern: "identity:" + normalized,
			}
		}
	}

	return &models.MappingResult{
		BudgetCategory: models.CategoryMiscellaneous,
		Matched:        false,
	}
}

// initVendorPatterns initializes the vendor domain category mapping. Vendor
// categories are the trade names planners pick when registering a vendor.
func initVendorPatterns() map[string]string {
	raw := map[string]string{
		"Catering":          models.CategoryFoodBeverage,
		"Bakery":            models.CategoryFoodBeverage,
		"Bartending":        models.CategoryFoodBeverage,
		"Audio/Visual":      models.CategoryEntertainment,
		"DJ":                models.CategoryEntertainment,
		"Live Band":         models.CategoryEntertainment,
		"Entertainment":     models.CategoryEntertainment,
		"Venue Services":    models.CategoryVenue,
		"Event Space":       models.CategoryVenue,
		"Equipment Rental":  models.CategoryVenue,
		"Florist":           models.CategoryDecorations,
		"Decor":             models.CategoryDecorations,
		"Party Supplies":    models.CategoryDecorations,
		"Photography":       models.CategoryPhotographyVideo,
		"Videography":       models.CategoryPhotographyVideo,
		"Photo Booth":       models.CategoryPhotographyVideo,
		"Transportation":    models.CategoryTransportation,
		"Charter Bus":       models.CategoryTransportation,
		"Shuttle Service":   models.CategoryTransportation,
		"Printing":          models.CategoryInvitations,
		"Stationery":        models.CategoryInvitations,
		"Gifts":             models.CategoryGiftsFavors,
		"Favors":            models.CategoryGiftsFavors,
		"Custom Apparel":    models.CategoryGiftsFavors,
		"T-Shirts":          models.CategoryGiftsFavors,
	}

	patterns := make(map[string]string, len(raw))
	for name, category := range raw {
		patterns[normalizeCategory(name)] = category
	}
	return patterns
}

// initIdentitySet maps normalized budget category spellings back onto the
// enumerated constants, accepting both the constant form ("FOOD_BEVERAGE")
// and the display form ("Food & Beverage").
func initIdentitySet() map[string]string {
	set := make(map[string]string, 2*len(models.AllBudgetCategories()))
	for _, category := range models.AllBudgetCategories() {
		set[normalizeCategory(category)] = category
		set[normalizeCategory(models.CategoryDisplayName(category))] = category
	}
	return set
}

// normalizeCategory normalizes free-form category strings for matching
func normalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, cut := range []string{" ", "-", "_", "/", "&", ".", "'"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}
