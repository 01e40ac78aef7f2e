package models

import (
	"errors"
	"strings"

	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyPurchase is the cumulative purchase total for one user and
// month, separate from the per-day purchase amounts.
type MonthlyPurchase struct {
	DefaultModel
	UserID         uuid.UUID       `gorm:"uniqueIndex:monthly_purchase_user_month"`
	YearMonth      types.Month     `gorm:"uniqueIndex:monthly_purchase_user_month"`
	TotalPurchases decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes          string
}

func (p *MonthlyPurchase) BeforeSave(_ *gorm.DB) error {
	p.Notes = strings.TrimSpace(p.Notes)

	if p.YearMonth.IsZero() {
		return ErrYearMonthInvalid
	}

	if p.TotalPurchases.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Upsert writes the purchase total for its (user, month) key.
func (p *MonthlyPurchase) Upsert(db *gorm.DB) error {
	var existing MonthlyPurchase
	err := db.Where("user_id = ? AND year_month = ?", p.UserID, p.YearMonth).First(&existing).Error
	if err == nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		return db.Save(p).Error
	}

	if errors.Is(err, ErrResourceNotFound) {
		return db.Create(p).Error
	}

	return err
}

// PurchasesForMonth returns the cumulative purchase record for a user
// and month. A missing record reads as a zero record.
func PurchasesForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthlyPurchase, error) {
	var purchase MonthlyPurchase
	err := db.Where("user_id = ? AND year_month = ?", userID, month).First(&purchase).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return MonthlyPurchase{
				UserID:         userID,
				YearMonth:      month,
				TotalPurchases: decimal.Zero,
			}, nil
		}
		return MonthlyPurchase{}, err
	}

	return purchase, nil
}

// PurchasesByUser returns all cumulative purchase records for a user,
// optionally filtered to one year, sorted by month descending.
func PurchasesByUser(db *gorm.DB, userID uuid.UUID, year int) ([]MonthlyPurchase, error) {
	q := db.Where(&MonthlyPurchase{UserID: userID})
	if year != 0 {
		q = q.Where("year_month LIKE ?", formatYearPrefix(year)+"%")
	}

	var purchases []MonthlyPurchase
	err := q.Order("year_month DESC").Find(&purchases).Error

	return purchases, err
}
