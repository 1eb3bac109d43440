package services

import (
	"fmt"

	"reunion-planner/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// amountRange bounds the generated amounts per budget category
type amountRange struct {
	min float64
	max float64
}

var generatorAmountRanges = map[string]amountRange{
	models.CategoryVenue:            {min: 500, max: 8000},
	models.CategoryFoodBeverage:     {min: 100, max: 4000},
	models.CategoryEntertainment:    {min: 150, max: 2500},
	models.CategoryDecorations:      {min: 20, max: 600},
	models.CategoryPhotographyVideo: {min: 200, max: 3000},
	models.CategoryTransportation:   {min: 50, max: 1500},
	models.CategoryInvitations:      {min: 10, max: 400},
	models.CategoryGiftsFavors:      {min: 25, max: 800},
	models.CategoryMiscellaneous:    {min: 10, max: 500},
}

var vendorTrades = []string{
	"Catering",
	"Audio/Visual",
	"Venue Services",
	"Florist",
	"Photography",
	"Charter Bus",
	"Printing",
	"Custom Apparel",
}

type lineItemGenerator struct {
	faker  *gofakeit.Faker
	mapper CategoryMapperInterface
}

// NewLineItemGenerator creates a generator for realistic line item data. A
// fixed seed makes generated sets reproducible.
func NewLineItemGenerator(seed uint64, mapper CategoryMapperInterface) LineItemGeneratorInterface {
	return &lineItemGenerator{
		faker:  gofakeit.New(seed),
		mapper: mapper,
	}
}

// GenerateLineItems generates a mixed set of items across all source modules
func (g *lineItemGenerator) GenerateLineItems(reunionID uuid.UUID, count int) []*models.LineItem {
	items := make([]*models.LineItem, 0, count)

	perModule := count / 3
	items = append(items, g.GenerateProgramItems(reunionID, perModule)...)
	items = append(items, g.GenerateFoodItems(reunionID, perModule)...)
	items = append(items, g.GenerateVendorItems(reunionID, count-2*perModule)...)

	return items
}

// GenerateProgramItems generates cost entries for scheduled program events
func (g *lineItemGenerator) GenerateProgramItems(reunionID uuid.UUID, count int) []*models.LineItem {
	activities := []string{"Welcome Mixer", "Golf Outing", "Memory Slideshow", "Awards Banquet", "City Tour", "Farewell Brunch"}
	categories := []string{models.CategoryEntertainment, models.CategoryVenue, models.CategoryTransportation, models.CategoryMiscellaneous}

	items := make([]*models.LineItem, 0, count)
	for i := 0; i < count; i++ {
		domainCategory := g.faker.RandomString(categories)
		items = append(items, g.buildItem(reunionID, models.SourceModuleProgram,
			fmt.Sprintf("evt-%d", i+1), domainCategory, g.faker.RandomString(activities)))
	}
	return items
}

// GenerateFoodItems generates cost entries for planned meals
func (g *lineItemGenerator) GenerateFoodItems(reunionID uuid.UUID, count int) []*models.LineItem {
	meals := []string{"Welcome Breakfast", "Picnic Lunch", "BBQ Dinner", "Dessert Social", "Coffee Station"}

	items := make([]*models.LineItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, g.buildItem(reunionID, models.SourceModuleFood,
			fmt.Sprintf("meal-%d", i+1), models.CategoryFoodBeverage, g.faker.RandomString(meals)))
	}
	return items
}

// GenerateVendorItems generates cost entries for contracted vendors
func (g *lineItemGenerator) GenerateVendorItems(reunionID uuid.UUID, count int) []*models.LineItem {
	items := make([]*models.LineItem, 0, count)
	for i := 0; i < count; i++ {
		trade := g.faker.RandomString(vendorTrades)
		label := fmt.Sprintf("%s (%s)", g.faker.Company(), trade)
		items = append(items, g.buildItem(reunionID, models.SourceModuleVendor,
			fmt.Sprintf("vnd-%d", i+1), trade, label))
	}
	return items
}

// GenerateAmount generates a plausible amount for a budget category
func (g *lineItemGenerator) GenerateAmount(budgetCategory string) decimal.Decimal {
	bounds, ok := generatorAmountRanges[budgetCategory]
	if !ok {
		bounds = generatorAmountRanges[models.CategoryMiscellaneous]
	}
	return decimal.NewFromFloat(g.faker.Price(bounds.min, bounds.max)).Round(2)
}

func (g *lineItemGenerator) buildItem(reunionID uuid.UUID, sourceModule, sourceKey, domainCategory, label string) *models.LineItem {
	budgetCategory := g.mapper.Map(sourceModule, domainCategory)
	estimated := g.GenerateAmount(budgetCategory)

	// Roughly half the items already have a confirmed cost near the estimate
	actual := decimal.Zero
	if g.faker.Bool() {
		drift := decimal.NewFromFloat(g.faker.Float64Range(0.8, 1.2))
		actual = estimated.Mul(drift).Round(2)
	}

	return &models.LineItem{
		ReunionID:       reunionID,
		SourceModule:    sourceModule,
		SourceKey:       sourceKey,
		DomainCategory:  domainCategory,
		BudgetCategory:  budgetCategory,
		Label:           label,
		EstimatedAmount: estimated,
		ActualAmount:    actual,
	}
}
