package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/dailyledger/backend/internal/types"
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterEntryRoutes registers the routes for daily entries with
// the RouterGroup that is passed.
func RegisterEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEntryList)
		r.GET("", GetEntries)
		r.POST("", UpsertEntry)
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", OptionsEntryDetail)
		r.DELETE("/:id", DeleteEntry)

		r.OPTIONS("/:id/images", OptionsEntryImages)
		r.POST("/:id/images", AttachImage)

		r.OPTIONS("/:id/images/:imageId", OptionsEntryImageDetail)
		r.DELETE("/:id/images/:imageId", DetachImage)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id	path	string	true	"ID of the entry"
// @Router			/v1/entries/{id} [options]
func OptionsEntryDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id	path	string	true	"ID of the entry"
// @Router			/v1/entries/{id}/images [options]
func OptionsEntryImages(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id		path	string	true	"ID of the entry"
// @Param			imageId	path	string	true	"ID of the attached image"
// @Router			/v1/entries/{id}/images/{imageId} [options]
func OptionsEntryImageDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		List entries
// @Description	Returns the daily entries of a user, newest first
// @Tags			Entries
// @Produce		json
// @Success		200		{object}	EntryListResponse
// @Failure		400		{object}	EntryListResponse
// @Failure		401		{object}	EntryListResponse
// @Failure		403		{object}	EntryListResponse
// @Failure		500		{object}	EntryListResponse
// @Param			user	query		string	false	"User ID to list entries of. Defaults to the caller."
// @Param			year	query		int		false	"Only entries of this year"
// @Param			month	query		string	false	"Only entries of this month, YYYY-MM"
// @Router			/v1/entries [get]
func GetEntries(c *gin.Context) {
	explicit, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, explicit.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{Error: &e})
		return
	}

	prefix := ""
	if m := c.Query("month"); m != "" {
		month, err := types.ParseMonth(m)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryListResponse{Error: &e})
			return
		}
		prefix = month.String()
	} else if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			e := errYearNotSetInQuery.Error()
			c.JSON(status(errYearNotSetInQuery), EntryListResponse{Error: &e})
			return
		}
		prefix = fmt.Sprintf("%04d", year)
	}

	entries, err := models.EntriesByUser(models.DB, target)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{Error: &e})
		return
	}

	apiResources := make([]Entry, 0)
	for _, entry := range entries {
		if prefix != "" && !strings.HasPrefix(entry.Date, prefix) {
			continue
		}
		apiResources = append(apiResources, newEntry(c, entry))
	}

	// Newest first
	slices.SortFunc(apiResources, func(a, b Entry) int {
		return strings.Compare(b.Date, a.Date)
	})

	c.JSON(http.StatusOK, EntryListResponse{Data: apiResources})
}

// @Summary		Create or update entry
// @Description	Writes the entry for a (user, date) pair. An existing entry for the same date is updated in place.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		401		{object}	EntryResponse
// @Failure		403		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries [post]
func UpsertEntry(c *gin.Context) {
	var data EntryEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, data.User)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	entry := data.model(target)

	// Attached images survive an update of the amounts
	existing := models.DailyEntry{UserID: target, Date: data.Date}
	err = models.DB.Where(&existing).First(&existing).Error
	if err == nil {
		entry.Images = existing.Images
	}

	err = entry.Upsert(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	apiResource := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &apiResource})
}

// entryForWrite loads an entry and checks that the caller may modify it.
func entryForWrite(c *gin.Context) (models.DailyEntry, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.DailyEntry{}, err
	}

	current, err := currentCaller(c)
	if err != nil {
		return models.DailyEntry{}, err
	}

	var entry models.DailyEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		return models.DailyEntry{}, err
	}

	if entry.UserID != current.userID && !current.isAdmin() {
		return models.DailyEntry{}, errForbidden
	}

	return entry, nil
}

// @Summary		Delete entry
// @Description	Deletes a daily entry and its attached images
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the entry"
// @Router			/v1/entries/{id} [delete]
func DeleteEntry(c *gin.Context) {
	entry, err := entryForWrite(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if len(entry.Images) > 0 {
		err = models.DB.Where("id IN ?", []uuid.UUID(entry.Images)).Delete(&models.Image{}).Error
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Attach image
// @Description	Attaches an uploaded image to an entry
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		401		{object}	EntryResponse
// @Failure		403		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		string				true	"ID of the entry"
// @Param			image	body		AttachImageEditable	true	"Image reference"
// @Router			/v1/entries/{id}/images [post]
func AttachImage(c *gin.Context) {
	entry, err := entryForWrite(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	var data AttachImageEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	var image models.Image
	err = models.DB.First(&image, data.ImageID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	if !slices.Contains(entry.Images, image.ID) {
		entry.Images = append(entry.Images, image.ID)

		err = models.DB.Save(&entry).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EntryResponse{Error: &e})
			return
		}
	}

	apiResource := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &apiResource})
}

// @Summary		Detach image
// @Description	Removes an image from an entry and deletes its content
// @Tags			Entries
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID of the entry"
// @Param			imageId	path		string	true	"ID of the attached image"
// @Router			/v1/entries/{id}/images/{imageId} [delete]
func DetachImage(c *gin.Context) {
	entry, err := entryForWrite(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var uri URIEntryImage
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	index := slices.Index(entry.Images, uri.ImageID.UUID)
	if index < 0 {
		c.JSON(status(errImageNotAttached), httpError{Error: errImageNotAttached.Error()})
		return
	}

	entry.Images = slices.Delete(entry.Images, index, index+1)
	err = models.DB.Save(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Where("id = ?", uri.ImageID.UUID).Delete(&models.Image{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
