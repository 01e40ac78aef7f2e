package models_test

import (
	"testing"

	"github.com/dailyledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDailyEntryDerivedFields() {
	entry := suite.createTestEntry(models.DailyEntry{
		Date:            "2025-01-05",
		CashAmount:      decimal.NewFromFloat(100),
		NetworkAmount:   decimal.NewFromFloat(50),
		PurchasesAmount: decimal.NewFromFloat(30),
	})

	suite.Assert().True(entry.Total.Equal(decimal.NewFromFloat(150)), "Total is %s, should be 150", entry.Total)
	suite.Assert().True(entry.Remaining.Equal(decimal.NewFromFloat(120)), "Remaining is %s, should be 120", entry.Remaining)
}

func (suite *TestSuiteStandard) TestDailyEntryDerivedFieldsRecomputed() {
	entry := suite.createTestEntry(models.DailyEntry{
		Date:          "2025-01-05",
		CashAmount:    decimal.NewFromFloat(100),
		NetworkAmount: decimal.NewFromFloat(50),
	})

	entry.PurchasesAmount = decimal.NewFromFloat(60)
	err := models.DB.Save(&entry).Error
	suite.Assert().NoError(err)

	suite.Assert().True(entry.Remaining.Equal(decimal.NewFromFloat(90)), "Remaining is %s, should be 90", entry.Remaining)
}

func (suite *TestSuiteStandard) TestDailyEntryUpsertKeepsIdentity() {
	entry := models.DailyEntry{
		UserID:        uuid.New(),
		Date:          "2025-01-05",
		CashAmount:    decimal.NewFromFloat(100),
		NetworkAmount: decimal.NewFromFloat(50),
	}
	err := entry.Upsert(models.DB)
	suite.Require().NoError(err)

	update := models.DailyEntry{
		UserID:          entry.UserID,
		Date:            entry.Date,
		CashAmount:      decimal.NewFromFloat(200),
		PurchasesAmount: decimal.NewFromFloat(25),
		Notes:           "corrected",
	}
	err = update.Upsert(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Equal(entry.ID, update.ID, "Upsert for the same date must not create a new record")
	suite.Assert().True(entry.CreatedAt.Equal(update.CreatedAt), "CreatedAt must survive an upsert")
	suite.Assert().True(update.Remaining.Equal(decimal.NewFromFloat(175)), "Remaining is %s, should be 175", update.Remaining)

	entries, err := models.EntriesByUser(models.DB, entry.UserID)
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 1)
	suite.Assert().Equal("corrected", entries[0].Notes)
}

func (suite *TestSuiteStandard) TestDailyEntryUpsertSeparateDates() {
	userID := uuid.New()

	for _, date := range []string{"2025-01-05", "2025-01-06"} {
		entry := models.DailyEntry{
			UserID:     userID,
			Date:       date,
			CashAmount: decimal.NewFromFloat(10),
		}
		err := entry.Upsert(models.DB)
		suite.Require().NoError(err)
	}

	entries, err := models.EntriesByUser(models.DB, userID)
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 2)
}

func (suite *TestSuiteStandard) TestDailyEntryInvalidDate() {
	tests := []string{
		"",
		"05.01.2025",
		"2025-1-5",
		"2025-02-30",
		"not a date",
	}

	for _, date := range tests {
		suite.T().Run(date, func(t *testing.T) {
			entry := models.DailyEntry{
				UserID: uuid.New(),
				Date:   date,
			}

			err := models.DB.Create(&entry).Error
			suite.Assert().ErrorIs(err, models.ErrDateInvalid)
		})
	}
}

func (suite *TestSuiteStandard) TestDailyEntryNegativeAmount() {
	entry := models.DailyEntry{
		UserID:        uuid.New(),
		Date:          "2025-01-05",
		NetworkAmount: decimal.NewFromFloat(-0.01),
	}

	err := models.DB.Create(&entry).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestDailyEntryTrimsNotes() {
	entry := suite.createTestEntry(models.DailyEntry{
		Date:  "2025-01-05",
		Notes: "  busy friday  ",
	})

	suite.Assert().Equal("busy friday", entry.Notes)
}

func (suite *TestSuiteStandard) TestEntriesByUser() {
	first := suite.createTestEntry(models.DailyEntry{Date: "2025-01-05"})
	_ = suite.createTestEntry(models.DailyEntry{Date: "2025-01-05"})

	entries, err := models.EntriesByUser(models.DB, first.UserID)
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 1)

	all, err := models.AllEntries(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Len(all, 2)
}
