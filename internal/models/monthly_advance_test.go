package models_test

import (
	"time"

	"github.com/dailyledger/backend/internal/models"
	"github.com/dailyledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyAdvanceRequiresMonth() {
	advance := models.MonthlyAdvance{
		UserID:        uuid.New(),
		TotalAdvances: decimal.NewFromFloat(100),
	}

	err := models.DB.Create(&advance).Error
	suite.Assert().ErrorIs(err, models.ErrYearMonthInvalid)
}

func (suite *TestSuiteStandard) TestMonthlyAdvanceUpsert() {
	month := types.NewMonth(2025, time.January)

	advance := models.MonthlyAdvance{
		UserID:        uuid.New(),
		YearMonth:     month,
		TotalAdvances: decimal.NewFromFloat(100),
	}
	err := advance.Upsert(models.DB)
	suite.Require().NoError(err)

	update := models.MonthlyAdvance{
		UserID:        advance.UserID,
		YearMonth:     month,
		TotalAdvances: decimal.NewFromFloat(250),
	}
	err = update.Upsert(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Equal(advance.ID, update.ID, "Upsert for the same month must not create a new record")

	total, err := models.AdvancesForMonth(models.DB, advance.UserID, month)
	suite.Require().NoError(err)
	suite.Assert().True(total.Equal(decimal.NewFromFloat(250)), "Total is %s, should be 250", total)
}

func (suite *TestSuiteStandard) TestAdvancesForMonthMissing() {
	total, err := models.AdvancesForMonth(models.DB, uuid.New(), types.NewMonth(2025, time.March))
	suite.Require().NoError(err)
	suite.Assert().True(total.IsZero())
}
