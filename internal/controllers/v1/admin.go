package v1

import (
	"net/http"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Confirmation phrases for the destructive admin calls. They are typed by
// the administrator in the UI and match the source system verbatim.
const (
	confirmResetData   = "تصفير البيانات" // "reset the data"
	confirmResetSystem = "تصفير كامل"     // "full reset"
)

// RegisterAdminRoutes registers the administrative routes with
// the RouterGroup that is passed.
func RegisterAdminRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/users/:id", OptionsAdminUser)
	r.DELETE("/users/:id", DeleteUser)

	r.OPTIONS("/reset-data", OptionsAdminReset)
	r.POST("/reset-data", ResetData)

	r.OPTIONS("/reset-system", OptionsAdminReset)
	r.POST("/reset-system", ResetSystem)
}

// ConfirmationEditable represents the confirmation for a destructive call
type ConfirmationEditable struct {
	Confirmation string `json:"confirmation" example:"تصفير البيانات"` // The confirmation phrase for the reset
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Admin
// @Success		204
// @Param			id	path	string	true	"User ID"
// @Router			/v1/admin/users/{id} [options]
func OptionsAdminUser(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Admin
// @Success		204
// @Router			/v1/admin/reset-data [options]
func OptionsAdminReset(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Delete user
// @Description	Deletes a user with their credential, profile, entries and advances. Cumulative purchase records are kept for the historical views.
// @Tags			Admin
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"User ID to delete"
// @Router			/v1/admin/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	admin, err := requireAdmin(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if uri.ID.UUID == admin.userID {
		c.JSON(status(errDeleteSelf), httpError{Error: errDeleteSelf.Error()})
		return
	}

	profile, err := models.ProfileByUser(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if profile.IsAdmin {
		c.JSON(status(errDeleteAdmin), httpError{Error: errDeleteAdmin.Error()})
		return
	}

	// The cascade runs sequentially and is not atomic. Data that is
	// already gone counts as deleted, a failure halfway leaves the
	// remaining steps for a retry.
	steps := []func() *gorm.DB{
		func() *gorm.DB { return models.DB.Where("user_id = ?", uri.ID.UUID).Delete(&models.DailyEntry{}) },
		func() *gorm.DB { return models.DB.Where("user_id = ?", uri.ID.UUID).Delete(&models.MonthlyAdvance{}) },
		func() *gorm.DB { return models.DB.Where("owner_id = ?", uri.ID.UUID).Delete(&models.Image{}) },
		func() *gorm.DB { return models.DB.Where("user_id = ?", uri.ID.UUID).Delete(&models.Credential{}) },
		func() *gorm.DB { return models.DB.Delete(&profile) },
	}

	for _, step := range steps {
		if err := step().Error; err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Reset data
// @Description	Permanently deletes all entries, advance totals and images. Users, profiles and the cumulative purchase records are kept.
// @Tags			Admin
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		403				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			confirmation	body		ConfirmationEditable	true	"Confirmation phrase"
// @Router			/v1/admin/reset-data [post]
func ResetData(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data ConfirmationEditable
	err = httputil.BindData(c, &data)
	if err != nil || data.Confirmation != confirmResetData {
		c.JSON(http.StatusBadRequest, httpError{Error: errResetConfirmation.Error()})
		return
	}

	// The cumulative monthly purchase records stay, they feed the
	// historical views.
	resources := []any{
		models.DailyEntry{},
		models.MonthlyAdvance{},
		models.Image{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Reset system
// @Description	Permanently deletes all data and all users except the calling administrator. Cumulative purchase records are kept.
// @Tags			Admin
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		401				{object}	httpError
// @Failure		403				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			confirmation	body		ConfirmationEditable	true	"Confirmation phrase"
// @Router			/v1/admin/reset-system [post]
func ResetSystem(c *gin.Context) {
	admin, err := requireAdmin(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data ConfirmationEditable
	err = httputil.BindData(c, &data)
	if err != nil || data.Confirmation != confirmResetSystem {
		c.JSON(http.StatusBadRequest, httpError{Error: errResetConfirmation.Error()})
		return
	}

	resources := []any{
		models.DailyEntry{},
		models.MonthlyAdvance{},
		models.Image{},
	}

	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			tx.Rollback()
			return
		}
	}

	// Everyone except the calling administrator loses their account
	err = tx.Where("user_id != ?", admin.userID).Delete(&models.Credential{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		tx.Rollback()
		return
	}

	err = tx.Where("user_id != ?", admin.userID).Delete(&models.UserProfile{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		tx.Rollback()
		return
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
