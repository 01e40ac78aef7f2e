package models_test

import (
	"github.com/dailyledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestProfileUsernameTaken() {
	existing := suite.createTestProfile(models.UserProfile{Username: "sara"})

	duplicate := models.UserProfile{
		UserID:   uuid.New(),
		Username: existing.Username,
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameTaken)
}

func (suite *TestSuiteStandard) TestProfileExists() {
	existing := suite.createTestProfile(models.UserProfile{})

	duplicate := models.UserProfile{
		UserID:   existing.UserID,
		Username: "someone-else",
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrProfileExists)
}

func (suite *TestSuiteStandard) TestProfileNegativeDeductions() {
	profile := models.UserProfile{
		UserID:     uuid.New(),
		Username:   "negative",
		Deductions: decimal.NewFromFloat(-500),
	}

	err := models.DB.Create(&profile).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestProfileTrimsUsername() {
	profile := suite.createTestProfile(models.UserProfile{Username: "  padded  "})
	suite.Assert().Equal("padded", profile.Username)
}

func (suite *TestSuiteStandard) TestProfileUpsertKeepsIdentity() {
	profile := suite.createTestProfile(models.UserProfile{
		Username:   "before",
		Deductions: decimal.NewFromFloat(100),
	})

	update := models.UserProfile{
		UserID:     profile.UserID,
		Username:   "after",
		Deductions: decimal.NewFromFloat(250),
	}
	err := update.Upsert(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Equal(profile.ID, update.ID)
	suite.Assert().True(profile.CreatedAt.Equal(update.CreatedAt))

	reread, err := models.ProfileByUser(models.DB, profile.UserID)
	suite.Require().NoError(err)
	suite.Assert().Equal("after", reread.Username)
	suite.Assert().True(reread.Deductions.Equal(decimal.NewFromFloat(250)))
}

func (suite *TestSuiteStandard) TestProfileByUserNotFound() {
	_, err := models.ProfileByUser(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
