package v1_test

import (
	"net/http"

	v1 "github.com/dailyledger/backend/internal/controllers/v1"
	"github.com/dailyledger/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "sara@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().NotEqual(uuid.Nil, response.Data.UserID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	data := v1.RegisterEditable{
		Email:    "sara@example.com",
		Password: "hunter2",
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", data)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", data)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestRegisterShortPassword() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "sara@example.com",
		Password: "abc",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the password must be at least 4 characters long", *response.Error)
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", `{ "email": "broken`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	session := suite.registerUser()

	// The email address is stored normalized, sign-in is case-insensitive
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "Sara@Example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "sara@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().NotEqual(session.UserID, response.Data.UserID)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterEditable{
		Email:    "sara@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "sara@example.com",
		Password: "wrong",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

// An unknown email address returns the same error as a wrong password so
// that the endpoint does not leak which addresses are registered.
func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginEditable{
		Email:    "nobody@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the email address or password is incorrect", *response.Error)
}
