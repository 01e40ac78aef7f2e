package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserProfile is the application-level user record.
//
// It is distinct from the sign-in credential: the credential identifies
// the caller, the profile carries everything the application knows about
// them. At most one profile exists per user ID.
type UserProfile struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"uniqueIndex"`
	Username   string          `gorm:"uniqueIndex"`
	IsAdmin    bool
	Deductions decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fixed monthly deduction, subtracted from net figures only

	// The password is additionally kept in plain text so that an
	// administrator can recover it for users. This mirrors the system
	// this backend replaces and is a known defect, see DESIGN.md.
	CurrentPassword string
}

func (p *UserProfile) BeforeSave(_ *gorm.DB) error {
	p.Username = strings.TrimSpace(p.Username)

	if p.Deductions.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// ProfileByUser returns the profile owned by a user ID.
func ProfileByUser(db *gorm.DB, userID uuid.UUID) (UserProfile, error) {
	var profile UserProfile
	err := db.Where(&UserProfile{UserID: userID}).First(&profile).Error

	return profile, err
}

// Upsert writes the profile for its user ID, reusing the existing
// record's identity and creation timestamp when there already is one.
func (p *UserProfile) Upsert(db *gorm.DB) error {
	var existing UserProfile
	err := db.Where(&UserProfile{UserID: p.UserID}).First(&existing).Error
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
