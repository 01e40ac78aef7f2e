package v1

import (
	"fmt"

	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryEditable represents all user configurable parameters
type EntryEditable struct {
	User            uuid.UUID       `json:"user"`                                            // Optional user to write for, defaults to the caller. Writing for others requires the administrator role.
	Date            string          `json:"date" binding:"required" example:"2025-01-05"`    // Calendar date of the entry
	CashAmount      decimal.Decimal `json:"cashAmount" example:"100" default:"0"`            // Cash received
	NetworkAmount   decimal.Decimal `json:"networkAmount" example:"50.25" default:"0"`       // Card/network payments received
	PurchasesAmount decimal.Decimal `json:"purchasesAmount" example:"30" default:"0"`        // Purchases made this day
	AdvanceAmount   decimal.Decimal `json:"advanceAmount" example:"0" default:"0"`           // Advance taken this day
	Notes           string          `json:"notes" example:"busy friday" default:""`          // Free-form notes
}

func (editable EntryEditable) model(userID uuid.UUID) models.DailyEntry {
	return models.DailyEntry{
		UserID:          userID,
		Date:            editable.Date,
		CashAmount:      editable.CashAmount,
		NetworkAmount:   editable.NetworkAmount,
		PurchasesAmount: editable.PurchasesAmount,
		AdvanceAmount:   editable.AdvanceAmount,
		Notes:           editable.Notes,
	}
}

type EntryLinks struct {
	Self   string   `json:"self" example:"https://example.com/api/v1/entries/d1b7d9d8-3e21-4f4d-9e4a-2f5a4a9a6d7e"` // The entry itself
	Images []string `json:"images"`                                                                                 // Content URLs of the attached images
}

type Entry struct {
	models.DefaultModel
	UserID          uuid.UUID        `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Date            string           `json:"date" example:"2025-01-05"`
	CashAmount      decimal.Decimal  `json:"cashAmount" example:"100"`
	NetworkAmount   decimal.Decimal  `json:"networkAmount" example:"50.25"`
	PurchasesAmount decimal.Decimal  `json:"purchasesAmount" example:"30"`
	AdvanceAmount   decimal.Decimal  `json:"advanceAmount" example:"0"`
	Total           decimal.Decimal  `json:"total" example:"150.25"`     // cash + network, computed at write time
	Remaining       decimal.Decimal  `json:"remaining" example:"120.25"` // total - purchases, computed at write time
	Notes           string           `json:"notes" example:"busy friday"`
	Images          models.ImageRefs `json:"images"` // IDs of the attached images
	Links           EntryLinks       `json:"links"`
}

func newEntry(c *gin.Context, model models.DailyEntry) Entry {
	url := c.GetString(string(models.DBContextURL))

	imageLinks := make([]string, 0, len(model.Images))
	for _, id := range model.Images {
		imageLinks = append(imageLinks, fmt.Sprintf("%s/v1/images/%s", url, id))
	}

	return Entry{
		DefaultModel:    model.DefaultModel,
		UserID:          model.UserID,
		Date:            model.Date,
		CashAmount:      model.CashAmount,
		NetworkAmount:   model.NetworkAmount,
		PurchasesAmount: model.PurchasesAmount,
		AdvanceAmount:   model.AdvanceAmount,
		Total:           model.Total,
		Remaining:       model.Remaining,
		Notes:           model.Notes,
		Images:          model.Images,
		Links: EntryLinks{
			Self:   fmt.Sprintf("%s/v1/entries/%s", url, model.ID),
			Images: imageLinks,
		},
	}
}

type EntryResponse struct {
	Data  *Entry  `json:"data"`                                                          // Data for the entry
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EntryListResponse struct {
	Data  []Entry `json:"data"`                                                          // List of entries
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// AttachImageEditable represents an image attachment request
type AttachImageEditable struct {
	ImageID uuid.UUID `json:"imageId" binding:"required"` // ID of an uploaded image
}
