package models

// Fixed budget categories used for aggregate reporting, independent of the
// source module that produced a cost
const (
	CategoryVenue            = "VENUE"
	CategoryFoodBeverage     = "FOOD_BEVERAGE"
	CategoryEntertainment    = "ENTERTAINMENT"
	CategoryDecorations      = "DECORATIONS"
	CategoryPhotographyVideo = "PHOTOGRAPHY_VIDEO"
	CategoryTransportation   = "TRANSPORTATION"
	CategoryInvitations      = "INVITATIONS"
	CategoryGiftsFavors      = "GIFTS_FAVORS"
	CategoryMiscellaneous    = "MISCELLANEOUS"
)

// Source modules that can originate a line item
const (
	SourceModuleManual  = "manual"
	SourceModuleProgram = "program"
	SourceModuleFood    = "food"
	SourceModuleVendor  = "vendor"
)

// AllBudgetCategories returns all valid budget category constants
func AllBudgetCategories() []string {
	return []string{
		CategoryVenue,
		CategoryFoodBeverage,
		CategoryEntertainment,
		CategoryDecorations,
		CategoryPhotographyVideo,
		CategoryTransportation,
		CategoryInvitations,
		CategoryGiftsFavors,
		CategoryMiscellaneous,
	}
}

// IsValidBudgetCategory checks if a budget category string is valid
func IsValidBudgetCategory(category string) bool {
	for _, validCategory := range AllBudgetCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// AllSourceModules returns all valid source module constants
func AllSourceModules() []string {
	return []string{
		SourceModuleManual,
		SourceModuleProgram,
		SourceModuleFood,
		SourceModuleVendor,
	}
}

// IsValidSourceModule checks if a source module string is valid
func IsValidSourceModule(sourceModule string) bool {
	switch sourceModule {
	case SourceModuleManual, SourceModuleProgram, SourceModuleFood, SourceModuleVendor:
		return true
	default:
		return false
	}
}

// categoryDisplayNames maps budget category constants to presentation labels
var categoryDisplayNames = map[string]string{
	CategoryVenue:            "Venue",
	CategoryFoodBeverage:     "Food & Beverage",
	CategoryEntertainment:    "Entertainment",
	CategoryDecorations:      "Decorations",
	CategoryPhotographyVideo: "Photography/Video",
	CategoryTransportation:   "Transportation",
	CategoryInvitations:      "Invitations",
	CategoryGiftsFavors:      "Gifts/Favors",
	CategoryMiscellaneous:    "Miscellaneous",
}

// CategoryDisplayName returns the human-readable label for a budget category.
// Unknown categories fall back to the Miscellaneous label.
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return categoryDisplayNames[CategoryMiscellaneous]
}

// MappingResult contains the result of mapping a domain category onto a
// budget category
type MappingResult struct {
	BudgetCategory string `json:"budget_category"`
	Matched        bool   `json:"matched"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
}
