package models

import (
	"errors"

	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyAdvance is the cumulative advance total for one user and month.
//
// It is tracked separately from the advance amounts on daily entries and
// reported as additive context next to them, never blended in.
type MonthlyAdvance struct {
	DefaultModel
	UserID        uuid.UUID       `gorm:"uniqueIndex:monthly_advance_user_month"`
	YearMonth     types.Month     `gorm:"uniqueIndex:monthly_advance_user_month"`
	TotalAdvances decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (a *MonthlyAdvance) BeforeSave(_ *gorm.DB) error {
	if a.YearMonth.IsZero() {
		return ErrYearMonthInvalid
	}

	if a.TotalAdvances.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Upsert writes the advance total for its (user, month) key.
func (a *MonthlyAdvance) Upsert(db *gorm.DB) error {
	var existing MonthlyAdvance
	err := db.Where("user_id = ? AND year_month = ?", a.UserID, a.YearMonth).First(&existing).Error
	if err == nil {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
		return db.Save(a).Error
	}

	if errors.Is(err, ErrResourceNotFound) {
		return db.Create(a).Error
	}

	return err
}

// AdvancesForMonth returns the cumulative advance total for a user and
// month. A missing record reads as zero.
func AdvancesForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var advance MonthlyAdvance
	err := db.Where("user_id = ? AND year_month = ?", userID, month).First(&advance).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return advance.TotalAdvances, nil
}
