package database

import (
	"fmt"
	"testing"
	"time"

	"reunion-planner/internal/config"
	"reunion-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	return testDB
}

func CreateTestReunion(t *testing.T, db *DB, ownerID uuid.UUID) *models.Reunion {
	t.Helper()

	planned := time.Now().AddDate(0, 6, 0)
	reunion := &models.Reunion{
		OwnerID:     ownerID,
		Title:       "Miller Family Reunion",
		ReunionType: models.ReunionTypeFamily,
		PlannedDate: &planned,
	}

	if err := db.Create(reunion).Error; err != nil {
		t.Fatalf("failed to create test reunion: %v", err)
	}

	return reunion
}

func CreateTestLineItem(t *testing.T, db *DB, reunionID uuid.UUID, sourceModule, sourceKey, category string, estimated, actual decimal.Decimal) *models.LineItem {
	t.Helper()

	item := &models.LineItem{
		ReunionID:       reunionID,
		SourceModule:    sourceModule,
		SourceKey:       sourceKey,
		Label:           fmt.Sprintf("%s item %s", sourceModule, sourceKey),
		BudgetCategory:  category,
		EstimatedAmount: estimated,
		ActualAmount:    actual,
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test line item: %v", err)
	}

	return item
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"line_items",
		"reunions",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
