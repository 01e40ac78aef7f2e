package v1

import (
	"fmt"

	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	Username string `json:"username" binding:"required" example:"sara"` // Display name, unique across all users
	Password string `json:"password" example:"hunter2" default:""`      // Optional new password, at least 4 characters when set
	IsAdmin  bool   `json:"isAdmin" example:"false" default:"false"`    // Request the administrator role. Only honored for the very first profile.
}

type ProfileLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/profile?user=65392deb-5e92-4268-b114-297faad6cdce"`    // The profile itself
	Entries string `json:"entries" example:"https://example.com/api/v1/entries?user=65392deb-5e92-4268-b114-297faad6cdce"` // Daily entries of this user
}

type Profile struct {
	models.DefaultModel
	UserID     uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // The stable user ID
	Username   string          `json:"username" example:"sara"`
	IsAdmin    bool            `json:"isAdmin" example:"false"`
	Deductions decimal.Decimal `json:"deductions" example:"500"` // Fixed monthly deduction
	Links      ProfileLinks    `json:"links"`
}

func newProfile(c *gin.Context, model models.UserProfile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Username:     model.Username,
		IsAdmin:      model.IsAdmin,
		Deductions:   model.Deductions,
		Links: ProfileLinks{
			Self:    fmt.Sprintf("%s/v1/profile?user=%s", url, model.UserID),
			Entries: fmt.Sprintf("%s/v1/entries?user=%s", url, model.UserID),
		},
	}
}

// AdminProfile is the administrator's view of a profile. It includes the
// recoverable password, see the documentation on UserProfile.
type AdminProfile struct {
	Profile
	CurrentPassword string `json:"currentPassword" example:"hunter2"` // Recoverable password of the user
}

func newAdminProfile(c *gin.Context, model models.UserProfile) AdminProfile {
	return AdminProfile{
		Profile:         newProfile(c, model),
		CurrentPassword: model.CurrentPassword,
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileListResponse struct {
	Data  []AdminProfile `json:"data"`                                                          // List of profiles
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// PasswordVerifyEditable represents the parameters for a password check
type PasswordVerifyEditable struct {
	User     uuid.UUID `json:"user"`                           // Optional user to check, defaults to the caller
	Password string    `json:"password" binding:"required"`    // The password to check
}

type PasswordVerification struct {
	Valid bool `json:"valid" example:"true"` // Whether the password matched
}

type PasswordVerifyResponse struct {
	Data  *PasswordVerification `json:"data"`
	Error *string               `json:"error" example:"you must provide a valid bearer token"`
}

// PasswordUpdateEditable represents the parameters for a password change
type PasswordUpdateEditable struct {
	User            uuid.UUID `json:"user"`                           // Optional user to update, defaults to the caller
	CurrentPassword string    `json:"currentPassword" default:""`     // Required unless the caller is an administrator
	NewPassword     string    `json:"newPassword" binding:"required"` // The new password, at least 4 characters
}

// DeductionsEditable represents the configurable monthly deduction
type DeductionsEditable struct {
	Deductions decimal.Decimal `json:"deductions" example:"500"` // The fixed monthly deduction, must not be negative
}

// UsernameEditable represents a rename request
type UsernameEditable struct {
	Username string `json:"username" binding:"required" example:"sara"` // The new username
}
