package models_test

import (
	"github.com/dailyledger/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestConnectInvalidFile() {
	err := models.Connect("/this/path/does/not/exist/ledger.db")
	suite.Assert().Error(err)
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	suite.CloseDB()

	_, err := models.AllEntries(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = models.ProfileByUser(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
