package services

import (
	"testing"

	"reunion-planner/internal/database"
	"reunion-planner/internal/dto"
	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"
	"reunion-planner/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SyncServiceSuite struct {
	suite.Suite
	db        *database.DB
	repo      repositories.LineItemRepositoryInterface
	lineItems LineItemServiceInterface
	sync      SyncServiceInterface
	reunion   *models.Reunion
}

func (s *SyncServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewLineItemRepository(s.db.DB)
	reunionRepo := repositories.NewReunionRepository(s.db.DB)
	locker := NewReunionLocker()
	logger := NewBudgetLogger()

	s.lineItems = NewLineItemService(s.repo, reunionRepo, NewCategoryMapper(), locker, logger, noopMetrics{})
	s.sync = NewSyncService(s.repo, reunionRepo, locker, 500, logger, noopMetrics{})
	s.reunion = database.CreateTestReunion(s.T(), s.db, uuid.New())
}

func (s *SyncServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestSyncServiceSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceSuite))
}

func (s *SyncServiceSuite) upsert(key, estimated, actual string) *models.LineItem {
	req := &dto.UpsertLineItemRequest{
		SourceModule:    models.SourceModuleVendor,
		SourceKey:       key,
		DomainCategory:  "Catering",
		Label:           "Item " + key,
		EstimatedAmount: estimated,
		ActualAmount:    actual,
	}
	item, _, err := s.lineItems.Upsert(s.reunion.ID, req)
	s.Require().NoError(err)
	return item
}

func (s *SyncServiceSuite) TestSyncBatch_WholeReunion() {
	s.upsert("a", "100", "90.50")
	s.upsert("b", "200", "210.25")
	s.upsert("c", "300", "")

	outcome, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)
	s.Equal(3, outcome.SyncedCount)
	s.False(outcome.ScopeEmpty)
	s.Empty(outcome.ConflictItemIDs)
	s.True(outcome.SyncedTotal.Equal(decimal.RequireFromString("300.75")),
		"syncedTotal = %s", outcome.SyncedTotal)

	items, err := s.repo.GetByReunionID(s.reunion.ID)
	s.NoError(err)
	for _, item := range items {
		s.True(item.Synced)
	}
}

func (s *SyncServiceSuite) TestSyncBatch_SubsetScope() {
	a := s.upsert("a", "100", "100")
	s.upsert("b", "200", "200")

	outcome, err := s.sync.SyncBatch(s.reunion.ID, []uuid.UUID{a.ID})
	s.NoError(err)
	s.Equal(1, outcome.SyncedCount)
	s.True(outcome.SyncedTotal.Equal(decimal.NewFromInt(100)))

	unsynced, err := s.repo.GetUnsyncedByReunionID(s.reunion.ID)
	s.NoError(err)
	s.Len(unsynced, 1)
	s.Equal("b", unsynced[0].SourceKey)
}

func (s *SyncServiceSuite) TestSyncBatch_Idempotent() {
	s.upsert("a", "100", "90")

	first, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)
	s.Equal(1, first.SyncedCount)

	// A repeat with no intervening edits must never double count
	second, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)
	s.True(second.ScopeEmpty)
	s.Equal(0, second.SyncedCount)
	s.True(second.SyncedTotal.IsZero())
}

func (s *SyncServiceSuite) TestSyncBatch_EditAfterSyncResyncsOnlyChanged() {
	s.upsert("a", "100", "90")
	s.upsert("b", "200", "180")

	_, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)

	// Editing one item's amount pulls only that item back into scope
	s.upsert("a", "100", "95")

	outcome, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)
	s.Equal(1, outcome.SyncedCount)
	s.True(outcome.SyncedTotal.Equal(decimal.NewFromInt(95)),
		"syncedTotal = %s", outcome.SyncedTotal)
}

func (s *SyncServiceSuite) TestSyncBatch_ForeignAndUnknownIDsFallOutOfScope() {
	a := s.upsert("a", "100", "100")

	other := database.CreateTestReunion(s.T(), s.db, uuid.New())
	foreign := database.CreateTestLineItem(s.T(), s.db, other.ID,
		models.SourceModuleManual, "f-1", models.CategoryVenue,
		decimal.NewFromInt(50), decimal.NewFromInt(50))

	outcome, err := s.sync.SyncBatch(s.reunion.ID, []uuid.UUID{a.ID, foreign.ID, uuid.New()})
	s.NoError(err)
	s.Equal(1, outcome.SyncedCount)

	stored, err := s.repo.GetByID(foreign.ID)
	s.NoError(err)
	s.False(stored.Synced)
}

func (s *SyncServiceSuite) TestSyncBatch_EmptyScope() {
	outcome, err := s.sync.SyncBatch(s.reunion.ID, nil)
	s.NoError(err)
	s.True(outcome.ScopeEmpty)
	s.Equal(0, outcome.SyncedCount)
}

func (s *SyncServiceSuite) TestSyncBatch_BatchLimit() {
	reunionRepo := repositories.NewReunionRepository(s.db.DB)
	limited := NewSyncService(s.repo, reunionRepo, NewReunionLocker(), 2, NewBudgetLogger(), noopMetrics{})

	s.upsert("a", "100", "100")
	s.upsert("b", "100", "100")
	s.upsert("c", "100", "100")

	_, err := limited.SyncBatch(s.reunion.ID, nil)
	s.ErrorIs(err, ErrSyncBatchTooLarge)

	// Oversized batches leave everything untouched
	unsynced, err := s.repo.GetUnsyncedByReunionID(s.reunion.ID)
	s.NoError(err)
	s.Len(unsynced, 3)
}

func (s *SyncServiceSuite) TestSyncBatch_UnknownReunion() {
	_, err := s.sync.SyncBatch(uuid.New(), nil)
	s.ErrorIs(err, ErrNotFound)
}

func TestSyncBatch_ConflictsSkippedAndReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lineItemRepo := repository_mocks.NewMockLineItemRepositoryInterface(ctrl)
	reunionRepo := repository_mocks.NewMockReunionRepositoryInterface(ctrl)

	reunionID := uuid.New()
	itemA := models.LineItem{ID: uuid.New(), ReunionID: reunionID, ActualAmount: decimal.NewFromInt(40)}
	itemB := models.LineItem{ID: uuid.New(), ReunionID: reunionID, ActualAmount: decimal.NewFromInt(60)}

	reunionRepo.EXPECT().GetByID(reunionID).Return(&models.Reunion{ID: reunionID}, nil)
	lineItemRepo.EXPECT().GetUnsyncedByReunionID(reunionID).Return([]models.LineItem{itemA, itemB}, nil)
	lineItemRepo.EXPECT().MarkSyncedBatch(gomock.Any()).
		Return([]uuid.UUID{itemA.ID}, []uuid.UUID{itemB.ID}, nil)

	service := NewSyncService(lineItemRepo, reunionRepo, NewReunionLocker(), 500, NewBudgetLogger(), noopMetrics{})

	outcome, err := service.SyncBatch(reunionID, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, outcome.SyncedCount)
	assert.True(t, outcome.SyncedTotal.Equal(decimal.NewFromInt(40)),
		"conflicted item's amount must not count toward the total")
	assert.Equal(t, []string{itemB.ID.String()}, outcome.ConflictItemIDs)
}
