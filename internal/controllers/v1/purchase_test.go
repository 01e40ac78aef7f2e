package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/dailyledger/backend/internal/controllers/v1"
	"github.com/dailyledger/backend/internal/types"
	"github.com/dailyledger/backend/test"
	"github.com/shopspring/decimal"
)

// A month without a stored total reads back as a zero record.
func (suite *TestSuiteStandard) TestGetPurchasesDefaultZero() {
	session := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases?month=2025-01", "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PurchaseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(session.UserID, response.Data.UserID)
	suite.Assert().Equal(types.NewMonth(2025, time.January), response.Data.Month)
	suite.Assert().True(response.Data.TotalPurchases.IsZero(), "TotalPurchases is %s, expected 0", response.Data.TotalPurchases)
}

func (suite *TestSuiteStandard) TestGetPurchasesOtherUser() {
	admin := suite.createUser("admin", true)
	user := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/purchases?month=2025-01&user=%s", admin.UserID), "", bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/purchases?month=2025-01&user=%s", user.UserID), "", bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestUpdatePurchasesNotAdmin() {
	_ = suite.createUser("admin", true)
	user := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/purchases", v1.PurchaseEditable{
		Month:          types.NewMonth(2025, time.January),
		TotalPurchases: decimal.NewFromInt(320),
	}, bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestUpdatePurchases() {
	admin := suite.createUser("admin", true)
	user := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/purchases", v1.PurchaseEditable{
		User:           user.UserID,
		Month:          types.NewMonth(2025, time.January),
		TotalPurchases: decimal.NewFromInt(320),
		Notes:          "stock refill",
	}, bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PurchaseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(user.UserID, response.Data.UserID)
	suite.Assert().Equal("stock refill", response.Data.Notes)
	suite.Assert().True(response.Data.TotalPurchases.Equal(decimal.NewFromInt(320)), "TotalPurchases is %s, expected 320", response.Data.TotalPurchases)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases?month=2025-01", "", bearer(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.TotalPurchases.Equal(decimal.NewFromInt(320)), "TotalPurchases is %s, expected 320", response.Data.TotalPurchases)
}

func (suite *TestSuiteStandard) TestGetPurchaseList() {
	admin := suite.createUser("admin", true)

	months := []types.Month{
		types.NewMonth(2025, time.January),
		types.NewMonth(2025, time.March),
		types.NewMonth(2024, time.December),
	}
	for i, month := range months {
		recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/purchases", v1.PurchaseEditable{
			Month:          month,
			TotalPurchases: decimal.NewFromInt(int64(100 * (i + 1))),
		}, bearer(admin))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	}

	// All months, newest first
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/list", "", bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PurchaseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(types.NewMonth(2025, time.March), response.Data[0].Month)
	suite.Assert().Equal(types.NewMonth(2024, time.December), response.Data[2].Month)

	// Filtered by year
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/list?year=2024", "", bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(types.NewMonth(2024, time.December), response.Data[0].Month)
}

func (suite *TestSuiteStandard) TestGetPurchaseListInvalidYear() {
	session := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/list?year=abc", "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// Updating the same month twice keeps a single record.
func (suite *TestSuiteStandard) TestUpdatePurchasesUpsert() {
	admin := suite.createUser("admin", true)

	for _, total := range []int64{100, 250} {
		recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/purchases", v1.PurchaseEditable{
			Month:          types.NewMonth(2025, time.January),
			TotalPurchases: decimal.NewFromInt(total),
		}, bearer(admin))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/purchases/list", "", bearer(admin))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PurchaseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].TotalPurchases.Equal(decimal.NewFromInt(250)), "TotalPurchases is %s, expected 250", response.Data[0].TotalPurchases)
}
