package models_test

import (
	"time"

	"github.com/dailyledger/backend/internal/models"
	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyUserSummary() {
	profile := suite.createTestProfile(models.UserProfile{
		Deductions: decimal.NewFromFloat(500),
	})

	_ = suite.createTestEntry(models.DailyEntry{
		UserID:          profile.UserID,
		Date:            "2025-01-05",
		CashAmount:      decimal.NewFromFloat(100),
		NetworkAmount:   decimal.NewFromFloat(50),
		PurchasesAmount: decimal.NewFromFloat(30),
	})
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:          profile.UserID,
		Date:            "2025-01-06",
		NetworkAmount:   decimal.NewFromFloat(80),
		PurchasesAmount: decimal.NewFromFloat(10),
	})

	// Outside the requested month, must not be counted
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:     profile.UserID,
		Date:       "2025-02-01",
		CashAmount: decimal.NewFromFloat(1000),
	})

	_ = suite.createTestPurchase(models.MonthlyPurchase{
		UserID:         profile.UserID,
		YearMonth:      types.NewMonth(2025, time.January),
		TotalPurchases: decimal.NewFromFloat(320),
	})

	summary, err := models.MonthlyUserSummary(models.DB, profile.UserID, types.NewMonth(2025, time.January))
	suite.Require().NoError(err)

	suite.Assert().True(summary.TotalCash.Equal(decimal.NewFromFloat(100)), "TotalCash is %s", summary.TotalCash)
	suite.Assert().True(summary.TotalNetwork.Equal(decimal.NewFromFloat(130)), "TotalNetwork is %s", summary.TotalNetwork)
	suite.Assert().True(summary.TotalAmount.Equal(decimal.NewFromFloat(230)), "TotalAmount is %s", summary.TotalAmount)
	suite.Assert().True(summary.TotalPurchases.Equal(decimal.NewFromFloat(40)), "TotalPurchases is %s", summary.TotalPurchases)
	suite.Assert().True(summary.TotalRemaining.Equal(decimal.NewFromFloat(190)), "TotalRemaining is %s", summary.TotalRemaining)
	suite.Assert().Equal(2, summary.ActiveDays)
	suite.Assert().Equal(31, summary.DaysInMonth)
	suite.Assert().True(summary.AverageDailyAmount.Equal(decimal.NewFromFloat(115)), "AverageDailyAmount is %s", summary.AverageDailyAmount)
	suite.Assert().True(summary.Deductions.Equal(decimal.NewFromFloat(500)))
	suite.Assert().True(summary.MonthlyPurchases.Equal(decimal.NewFromFloat(320)))
}

func (suite *TestSuiteStandard) TestMonthlyUserSummaryEmpty() {
	summary, err := models.MonthlyUserSummary(models.DB, uuid.New(), types.NewMonth(2025, time.February))
	suite.Require().NoError(err)

	suite.Assert().Equal(0, summary.ActiveDays)
	suite.Assert().Equal(28, summary.DaysInMonth)
	suite.Assert().True(summary.TotalAmount.IsZero())
	suite.Assert().True(summary.AverageDailyAmount.IsZero(), "Average must be zero when there are no active days")
}

func (suite *TestSuiteStandard) TestYearlyUserSummary() {
	profile := suite.createTestProfile(models.UserProfile{
		Deductions: decimal.NewFromFloat(500),
	})

	_ = suite.createTestEntry(models.DailyEntry{
		UserID:          profile.UserID,
		Date:            "2025-01-05",
		CashAmount:      decimal.NewFromFloat(100),
		NetworkAmount:   decimal.NewFromFloat(50),
		PurchasesAmount: decimal.NewFromFloat(30),
	})
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:        profile.UserID,
		Date:          "2025-01-06",
		NetworkAmount: decimal.NewFromFloat(80),
	})

	// A different year, must not be counted
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:     profile.UserID,
		Date:       "2024-12-31",
		CashAmount: decimal.NewFromFloat(999),
	})

	summary, err := models.YearlyUserSummary(models.DB, profile.UserID, 2025)
	suite.Require().NoError(err)

	suite.Require().Len(summary.MonthlyData, 12)

	january := summary.MonthlyData[0]
	suite.Assert().Equal(1, january.Month)
	suite.Assert().Equal("يناير", january.MonthName)
	suite.Assert().Equal(31, january.DaysInMonth)
	suite.Assert().True(january.TotalAmount.Equal(decimal.NewFromFloat(230)))
	suite.Assert().True(january.TotalRemaining.Equal(decimal.NewFromFloat(200)))

	february := summary.MonthlyData[1]
	suite.Assert().Equal("فبراير", february.MonthName)
	suite.Assert().True(february.TotalAmount.IsZero())

	totals := summary.YearlyTotals
	suite.Assert().True(totals.TotalAmount.Equal(decimal.NewFromFloat(230)))
	suite.Assert().Equal(2, totals.ActiveDays)
	suite.Assert().True(totals.Deductions.Equal(decimal.NewFromFloat(6000)), "Deductions are %s, should be 12 * 500", totals.Deductions)
	suite.Assert().True(totals.AverageMonthlyAmount.Equal(decimal.NewFromFloat(19)), "AverageMonthlyAmount is %s, should be round(230 / 12)", totals.AverageMonthlyAmount)
	suite.Assert().True(totals.AverageDailyAmount.Equal(decimal.NewFromFloat(115)))
}

func (suite *TestSuiteStandard) TestComprehensiveMonthlySummary() {
	first := suite.createTestProfile(models.UserProfile{})
	second := suite.createTestProfile(models.UserProfile{})

	_ = suite.createTestEntry(models.DailyEntry{
		UserID:          first.UserID,
		Date:            "2025-01-06",
		CashAmount:      decimal.NewFromFloat(100),
		PurchasesAmount: decimal.NewFromFloat(20),
	})
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:        second.UserID,
		Date:          "2025-01-05",
		NetworkAmount: decimal.NewFromFloat(50),
	})
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:     second.UserID,
		Date:       "2025-01-06",
		CashAmount: decimal.NewFromFloat(30),
	})

	summary, err := models.ComprehensiveMonthlySummary(models.DB, types.NewMonth(2025, time.January))
	suite.Require().NoError(err)

	suite.Require().Len(summary.DailySummary, 2)
	suite.Assert().Equal("2025-01-05", summary.DailySummary[0].Date, "Days must be sorted ascending")
	suite.Assert().Equal(1, summary.DailySummary[0].EntriesCount)
	suite.Assert().Equal(2, summary.DailySummary[1].EntriesCount)
	suite.Assert().True(summary.DailySummary[1].TotalAmount.Equal(decimal.NewFromFloat(130)))

	totals := summary.Totals
	suite.Assert().True(totals.TotalGross.Equal(decimal.NewFromFloat(180)))
	suite.Assert().True(totals.TotalNet.Equal(decimal.NewFromFloat(160)), "TotalNet is %s, should be the sum of the stored remainders", totals.TotalNet)
	suite.Assert().Equal(2, totals.ActiveDays)
	suite.Assert().Equal(2, totals.ActiveUsers)
	suite.Assert().Equal(31, totals.DaysInMonth)
	suite.Assert().True(totals.AverageDailyAmount.Equal(decimal.NewFromFloat(90)))
}

func (suite *TestSuiteStandard) TestComprehensiveMonthlySummaryEmpty() {
	summary, err := models.ComprehensiveMonthlySummary(models.DB, types.NewMonth(2026, time.April))
	suite.Require().NoError(err)

	suite.Assert().Empty(summary.DailySummary)
	suite.Assert().Equal(30, summary.Totals.DaysInMonth)
	suite.Assert().Equal(0, summary.Totals.ActiveUsers)
}

func (suite *TestSuiteStandard) TestUsersMonthlySummary() {
	big := suite.createTestProfile(models.UserProfile{
		Username:   "big",
		Deductions: decimal.NewFromFloat(100),
	})
	small := suite.createTestProfile(models.UserProfile{Username: "small"})
	_ = suite.createTestProfile(models.UserProfile{Username: "idle"})

	_ = suite.createTestEntry(models.DailyEntry{
		UserID:          big.UserID,
		Date:            "2025-01-05",
		CashAmount:      decimal.NewFromFloat(500),
		PurchasesAmount: decimal.NewFromFloat(50),
	})
	_ = suite.createTestEntry(models.DailyEntry{
		UserID:     small.UserID,
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromFloat(80),
	})

	summaries, err := models.UsersMonthlySummary(models.DB, types.NewMonth(2025, time.January))
	suite.Require().NoError(err)
	suite.Require().Len(summaries, 3)

	suite.Assert().Equal("big", summaries[0].Username, "Users must be sorted by total amount descending")
	suite.Assert().Equal("small", summaries[1].Username)
	suite.Assert().Equal("idle", summaries[2].Username)

	suite.Assert().True(summaries[0].TotalRemaining.Equal(decimal.NewFromFloat(350)), "TotalRemaining is %s, should be 450 - 100 deductions", summaries[0].TotalRemaining)
	suite.Assert().True(summaries[1].TotalRemaining.Equal(decimal.NewFromFloat(80)))
	suite.Assert().Equal(1, summaries[0].ActiveDays)
}
