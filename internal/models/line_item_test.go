package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LineItemModelSuite struct {
	suite.Suite
	reunionID uuid.UUID
}

func TestLineItemModelSuite(t *testing.T) {
	suite.Run(t, new(LineItemModelSuite))
}

func (s *LineItemModelSuite) SetupTest() {
	s.reunionID = uuid.New()
}

func (s *LineItemModelSuite) validItem() *LineItem {
	return &LineItem{
		ID:              uuid.New(),
		ReunionID:       s.reunionID,
		SourceModule:    SourceModuleProgram,
		SourceKey:       "evt-1",
		DomainCategory:  "Food & Beverage",
		BudgetCategory:  CategoryFoodBeverage,
		Label:           "Welcome Breakfast",
		EstimatedAmount: decimal.NewFromInt(1200),
		ActualAmount:    decimal.NewFromInt(1200),
	}
}

func (s *LineItemModelSuite) TestValidate_ValidItem() {
	s.NoError(s.validItem().Validate())
}

func (s *LineItemModelSuite) TestValidate_MissingReunion() {
	item := s.validItem()
	item.ReunionID = uuid.Nil
	s.Error(item.Validate())
}

func (s *LineItemModelSuite) TestValidate_InvalidSourceModule() {
	item := s.validItem()
	item.SourceModule = "spreadsheet"
	s.ErrorIs(item.Validate(), ErrInvalidSourceModule)
}

func (s *LineItemModelSuite) TestValidate_InvalidBudgetCategory() {
	item := s.validItem()
	item.BudgetCategory = "SNACKS"
	s.ErrorIs(item.Validate(), ErrInvalidBudgetCategory)
}

func (s *LineItemModelSuite) TestValidate_NegativeEstimated() {
	item := s.validItem()
	item.EstimatedAmount = decimal.NewFromInt(-50)
	s.ErrorIs(item.Validate(), ErrInvalidAmount)
}

func (s *LineItemModelSuite) TestValidate_NegativeActual() {
	item := s.validItem()
	item.ActualAmount = decimal.NewFromFloat(-0.01)
	s.ErrorIs(item.Validate(), ErrInvalidAmount)
}

func (s *LineItemModelSuite) TestValidate_AmountAboveSanityBound() {
	item := s.validItem()
	item.EstimatedAmount = MaxLineItemAmount.Add(decimal.NewFromInt(1))
	s.ErrorIs(item.Validate(), ErrAmountTooLarge)
}

func (s *LineItemModelSuite) TestValidate_ZeroAmountsAllowed() {
	item := s.validItem()
	item.EstimatedAmount = decimal.Zero
	item.ActualAmount = decimal.Zero
	s.NoError(item.Validate())
}

func (s *LineItemModelSuite) TestMarkSynced_SnapshotsAmounts() {
	item := s.validItem()
	item.MarkSynced()

	s.True(item.Synced)
	s.True(item.SyncedEstimatedAmount.Equal(decimal.NewFromInt(1200)))
	s.True(item.SyncedActualAmount.Equal(decimal.NewFromInt(1200)))
}

func (s *LineItemModelSuite) TestAmountsMatchLastSync() {
	item := s.validItem()
	item.MarkSynced()

	s.True(item.AmountsMatchLastSync(decimal.NewFromInt(1200), decimal.NewFromInt(1200)))
	s.False(item.AmountsMatchLastSync(decimal.NewFromInt(1200), decimal.NewFromInt(2600)))
	s.False(item.AmountsMatchLastSync(decimal.NewFromInt(1300), decimal.NewFromInt(1200)))
}

func (s *LineItemModelSuite) TestAmountsMatchLastSync_EqualByValueNotScale() {
	item := s.validItem()
	item.MarkSynced()

	// 1200 and 1200.00 are the same money
	s.True(item.AmountsMatchLastSync(decimal.RequireFromString("1200.00"), decimal.RequireFromString("1200.000")))
}

func (s *LineItemModelSuite) TestVersionConflict() {
	item := s.validItem()
	item.Version = 3

	s.False(item.HasVersionConflict(3))
	s.True(item.HasVersionConflict(2))

	item.IncrementVersion()
	s.Equal(4, item.Version)
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(42.50)); err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(-1)); err != ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := ValidateAmount(MaxLineItemAmount); err != nil {
		t.Fatalf("sanity bound itself should be allowed, got %v", err)
	}
}

func TestValidateAmount_ConfigurableBound(t *testing.T) {
	original := MaxLineItemAmount
	defer func() { MaxLineItemAmount = original }()

	// Deployments tighten the bound through BUDGET_MAX_AMOUNT wiring
	MaxLineItemAmount = decimal.NewFromInt(500)

	if err := ValidateAmount(decimal.NewFromInt(500)); err != nil {
		t.Fatalf("amount at the bound should be allowed, got %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(501)); err != ErrAmountTooLarge {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}
