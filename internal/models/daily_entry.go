package models

import (
	"errors"
	"strings"

	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyEntry is one financial record for one user on one date.
//
// There is at most one entry per (user, date) pair. This is not enforced
// with a uniqueness constraint alone, writes go through Upsert which
// patches an existing record in place.
type DailyEntry struct {
	DefaultModel
	UserID          uuid.UUID       `gorm:"index;uniqueIndex:daily_entry_user_date"`
	Date            string          `gorm:"index;uniqueIndex:daily_entry_user_date"` // Calendar date as YYYY-MM-DD
	CashAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NetworkAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PurchasesAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AdvanceAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes           string
	Images          ImageRefs `gorm:"serializer:json"`

	// Derived at write time. Changing the formulas requires rewriting
	// existing records, they are never recomputed on read.
	Total     decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // CashAmount + NetworkAmount
	Remaining decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Total - PurchasesAmount
}

// ImageRefs is an ordered list of attached image IDs.
type ImageRefs []uuid.UUID

// BeforeSave validates the entry and computes the derived fields.
func (e *DailyEntry) BeforeSave(_ *gorm.DB) error {
	e.Notes = strings.TrimSpace(e.Notes)

	if !types.ValidDate(e.Date) {
		return ErrDateInvalid
	}

	for _, amount := range []decimal.Decimal{e.CashAmount, e.NetworkAmount, e.PurchasesAmount, e.AdvanceAmount} {
		if amount.IsNegative() {
			return ErrAmountNegative
		}
	}

	e.Total = e.CashAmount.Add(e.NetworkAmount)
	e.Remaining = e.Total.Sub(e.PurchasesAmount)

	return nil
}

// Upsert writes the entry for its (user, date) key.
//
// An existing record keeps its identity and creation timestamp, only the
// update timestamp moves.
func (e *DailyEntry) Upsert(db *gorm.DB) error {
	var existing DailyEntry
	err := db.Where(&DailyEntry{UserID: e.UserID, Date: e.Date}).First(&existing).Error
	if err == nil {
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt
		return db.Save(e).Error
	}

	if errors.Is(err, ErrResourceNotFound) {
		return db.Create(e).Error
	}

	return err
}

// EntriesByUser returns all daily entries owned by a user.
func EntriesByUser(db *gorm.DB, userID uuid.UUID) ([]DailyEntry, error) {
	var entries []DailyEntry
	err := db.Where(&DailyEntry{UserID: userID}).Find(&entries).Error

	return entries, err
}

// AllEntries returns every daily entry across all users.
func AllEntries(db *gorm.DB) ([]DailyEntry, error) {
	var entries []DailyEntry
	err := db.Find(&entries).Error

	return entries, err
}
