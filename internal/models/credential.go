package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credential is a sign-in account.
//
// It owns the stable user ID that all application data references. The
// profile a user sets up afterwards is a separate resource, see UserProfile.
type Credential struct {
	DefaultModel
	UserID   uuid.UUID `gorm:"uniqueIndex:credential_user_provider"`
	Provider string    `gorm:"uniqueIndex:credential_user_provider"`
	Email    string    `gorm:"uniqueIndex"`
	Secret   string // bcrypt hash of the password
}

// ProviderPassword is the only provider currently supported.
const ProviderPassword = "password"

func (c *Credential) BeforeSave(_ *gorm.DB) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))

	if c.Provider == "" {
		c.Provider = ProviderPassword
	}

	return nil
}

// CredentialByEmail returns the password credential for an email address.
func CredentialByEmail(db *gorm.DB, email string) (Credential, error) {
	var credential Credential
	err := db.Where(&Credential{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Provider: ProviderPassword,
	}).First(&credential).Error

	return credential, err
}

// CredentialsByUser returns all credentials linked to a user.
func CredentialsByUser(db *gorm.DB, userID uuid.UUID) ([]Credential, error) {
	var credentials []Credential
	err := db.Where(&Credential{UserID: userID}).Find(&credentials).Error

	return credentials, err
}
