package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReunionTypeFamily   = "family"
	ReunionTypeClass    = "class"
	ReunionTypeMilitary = "military"
	ReunionTypeOther    = "other"
)

var ErrInvalidReunionType = errors.New("invalid reunion type")

// Reunion is the scoping context for a budget ledger. Every line item belongs
// to exactly one reunion; the ledger never shares items across reunions.
type Reunion struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	ReunionType string     `gorm:"type:varchar(20);not null;default:'other'" json:"reunion_type"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Reunion
func (r *Reunion) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.ReunionType == "" {
		r.ReunionType = ReunionTypeOther
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// Validate validates the reunion fields
func (r *Reunion) Validate() error {
	if r.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if r.Title == "" {
		return errors.New("reunion title is required")
	}

	if !IsValidReunionType(r.ReunionType) {
		return ErrInvalidReunionType
	}

	return nil
}

// IsValidReunionType checks if the reunion type is valid
func IsValidReunionType(reunionType string) bool {
	switch reunionType {
	case ReunionTypeFamily, ReunionTypeClass, ReunionTypeMilitary, ReunionTypeOther:
		return true
	default:
		return false
	}
}

// TableName returns the table name for Reunion
func (r *Reunion) TableName() string {
	return "reunions"
}
