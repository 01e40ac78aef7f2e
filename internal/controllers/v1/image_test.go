package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"

	v1 "github.com/dailyledger/backend/internal/controllers/v1"
	"github.com/dailyledger/backend/test"
	"github.com/shopspring/decimal"
)

// uploadTestImage uploads a file through the API and returns its reference.
func (suite *TestSuiteStandard) uploadTestImage(session v1.Session, filename string, content []byte) v1.ImageReference {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", filename)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	headers := bearer(session)
	headers["Content-Type"] = mw.FormDataContentType()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/images", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestUploadImage() {
	session := suite.createUser("sara", false)

	image := suite.uploadTestImage(session, "receipt.jpg", []byte("not really a JPEG"))

	suite.Assert().Equal("receipt.jpg", image.Filename)
	suite.Assert().Contains(image.URL, "/v1/images/")

	// The content is served back under the returned URL
	recorder := test.Request(suite.T(), http.MethodGet, image.URL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Equal("not really a JPEG", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestUploadImageUnauthenticated() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/images", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUploadImageNoFile() {
	session := suite.createUser("sara", false)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/images", "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ImageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("you must send a file to this endpoint", *response.Error)
}

func (suite *TestSuiteStandard) TestGetImageNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/images/5eecc18f-4dfc-4e05-95a4-f1ee66bbc712", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAttachImage() {
	session := suite.createUser("sara", false)

	entry := suite.createTestEntry(session, v1.EntryEditable{
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromInt(100),
	})
	image := suite.uploadTestImage(session, "receipt.jpg", []byte("content"))

	recorder := test.Request(suite.T(), http.MethodPost, entry.Links.Self+"/images", v1.AttachImageEditable{
		ImageID: image.ID,
	}, bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Images, 1)
	suite.Require().Len(response.Data.Links.Images, 1)
	suite.Assert().Contains(response.Data.Links.Images[0], image.ID.String())

	// Attaching twice does not duplicate the reference
	recorder = test.Request(suite.T(), http.MethodPost, entry.Links.Self+"/images", v1.AttachImageEditable{
		ImageID: image.ID,
	}, bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Images, 1)
}

// Attached images survive an update of the entry amounts.
func (suite *TestSuiteStandard) TestAttachImageSurvivesUpsert() {
	session := suite.createUser("sara", false)

	entry := suite.createTestEntry(session, v1.EntryEditable{
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromInt(100),
	})
	image := suite.uploadTestImage(session, "receipt.jpg", []byte("content"))

	recorder := test.Request(suite.T(), http.MethodPost, entry.Links.Self+"/images", v1.AttachImageEditable{
		ImageID: image.ID,
	}, bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	updated := suite.createTestEntry(session, v1.EntryEditable{
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromInt(200),
	})

	suite.Assert().Equal(entry.ID, updated.ID)
	suite.Assert().Len(updated.Images, 1)
}

func (suite *TestSuiteStandard) TestDetachImage() {
	session := suite.createUser("sara", false)

	entry := suite.createTestEntry(session, v1.EntryEditable{
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromInt(100),
	})
	image := suite.uploadTestImage(session, "receipt.jpg", []byte("content"))

	recorder := test.Request(suite.T(), http.MethodPost, entry.Links.Self+"/images", v1.AttachImageEditable{
		ImageID: image.ID,
	}, bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, entry.Links.Self+"/images/"+image.ID.String(), "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Detaching deletes the content as well
	recorder = test.Request(suite.T(), http.MethodGet, image.URL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// The image is no longer attached
	recorder = test.Request(suite.T(), http.MethodDelete, entry.Links.Self+"/images/"+image.ID.String(), "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// Deleting an entry deletes its attached images with it.
func (suite *TestSuiteStandard) TestDeleteEntryDeletesImages() {
	session := suite.createUser("sara", false)

	entry := suite.createTestEntry(session, v1.EntryEditable{
		Date:       "2025-01-05",
		CashAmount: decimal.NewFromInt(100),
	})
	image := suite.uploadTestImage(session, "receipt.jpg", []byte("content"))

	recorder := test.Request(suite.T(), http.MethodPost, entry.Links.Self+"/images", v1.AttachImageEditable{
		ImageID: image.ID,
	}, bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, entry.Links.Self, "", bearer(session))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, image.URL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
