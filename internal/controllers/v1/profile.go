package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dailyledger/backend/internal/auth"
	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterProfileRoutes registers the routes for the caller's own profile
// with the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.POST("", UpsertProfile)

	r.OPTIONS("/password", OptionsProfilePassword)
	r.PATCH("/password", UpdatePassword)

	r.OPTIONS("/password/verify", OptionsProfilePasswordVerify)
	r.POST("/password/verify", VerifyPassword)
}

// RegisterProfilesRoutes registers the administrative profile routes with
// the RouterGroup that is passed.
func RegisterProfilesRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfiles)
	r.GET("", GetProfiles)

	r.OPTIONS("/:id/deductions", OptionsProfileAttribute)
	r.PATCH("/:id/deductions", UpdateDeductions)

	r.OPTIONS("/:id/username", OptionsProfileAttribute)
	r.PATCH("/:id/username", UpdateUsername)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profile/password [options]
func OptionsProfilePassword(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profile/password/verify [options]
func OptionsProfilePasswordVerify(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfiles(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles/{id}/deductions [options]
func OptionsProfileAttribute(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Get profile
// @Description	Returns the caller's profile, or another user's for administrators
// @Tags			Profiles
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		401		{object}	ProfileResponse
// @Failure		403		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			user	query		string	false	"User ID to read the profile of. Defaults to the caller."
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	target, err := ledger_uuid.Parse(c.Query("user"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	// Reading another user's profile requires the administrator role.
	// Reading your own works without a profile so that the first call
	// after registration can detect that none exists yet.
	if target.UUID != userID && target != ledger_uuid.Nil {
		if _, err := requireAdmin(c); err != nil {
			e := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &e})
			return
		}
		userID = target.UUID
	}

	profile, err := models.ProfileByUser(models.DB, userID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Create or update profile
// @Description	Creates the caller's profile or updates it in place
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		401		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [post]
func UpsertProfile(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile := models.UserProfile{
		UserID:   userID,
		Username: data.Username,
	}

	existing, err := models.ProfileByUser(models.DB, userID)
	if err == nil {
		profile.IsAdmin = existing.IsAdmin
		profile.Deductions = existing.Deductions
		profile.CurrentPassword = existing.CurrentPassword
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	// The administrator role can only be claimed while no administrator
	// exists. This bootstraps the first admin, everything afterwards goes
	// through an existing one.
	if data.IsAdmin && !profile.IsAdmin {
		var admins int64
		err := models.DB.Model(&models.UserProfile{}).Where("is_admin = ?", true).Count(&admins).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &e})
			return
		}

		if admins == 0 {
			profile.IsAdmin = true
		}
	}

	if data.Password != "" {
		err = setPassword(&profile, data.Password)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &e})
			return
		}
	}

	err = profile.Upsert(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// setPassword updates the password on the profile and the stored secret of
// the user's sign-in credential.
func setPassword(profile *models.UserProfile, password string) error {
	if len(password) < 4 {
		return errPasswordTooShort
	}

	secret, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	err = models.DB.Model(&models.Credential{}).
		Where("user_id = ? AND provider = ?", profile.UserID, models.ProviderPassword).
		Update("secret", secret).Error
	if err != nil {
		return err
	}

	profile.CurrentPassword = password
	return nil
}

// @Summary		Verify password
// @Description	Checks a password against the stored credential
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	PasswordVerifyResponse
// @Failure		400		{object}	PasswordVerifyResponse
// @Failure		401		{object}	PasswordVerifyResponse
// @Failure		403		{object}	PasswordVerifyResponse
// @Failure		500		{object}	PasswordVerifyResponse
// @Param			check	body		PasswordVerifyEditable	true	"Password check"
// @Router			/v1/profile/password/verify [post]
func VerifyPassword(c *gin.Context) {
	var data PasswordVerifyEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PasswordVerifyResponse{Error: &e})
		return
	}

	target, err := resolveTarget(c, data.User)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PasswordVerifyResponse{Error: &e})
		return
	}

	credential, err := passwordCredential(target)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PasswordVerifyResponse{Error: &e})
		return
	}

	verification := PasswordVerification{
		Valid: auth.CheckPassword(credential.Secret, data.Password),
	}
	c.JSON(http.StatusOK, PasswordVerifyResponse{Data: &verification})
}

// passwordCredential returns the password credential of a user.
func passwordCredential(userID uuid.UUID) (models.Credential, error) {
	credentials, err := models.CredentialsByUser(models.DB, userID)
	if err != nil {
		return models.Credential{}, err
	}

	for _, credential := range credentials {
		if credential.Provider == models.ProviderPassword {
			return credential, nil
		}
	}

	return models.Credential{}, fmt.Errorf("%w credential matching your query", models.ErrResourceNotFound)
}

// @Summary		Update password
// @Description	Changes a user's password. Users change their own with the current password, administrators change any without it.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			change	body		PasswordUpdateEditable	true	"Password change"
// @Router			/v1/profile/password [patch]
func UpdatePassword(c *gin.Context) {
	var data PasswordUpdateEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	current, err := currentCaller(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	target, err := resolveTarget(c, data.User)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Non-administrators have to prove they know the current password
	if !current.isAdmin() {
		credential, err := passwordCredential(target)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		if !auth.CheckPassword(credential.Secret, data.CurrentPassword) {
			c.JSON(status(errWrongPassword), httpError{Error: errWrongPassword.Error()})
			return
		}
	}

	profile, err := models.ProfileByUser(models.DB, target)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = setPassword(&profile, data.NewPassword)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Save(&profile).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List profiles
// @Description	Returns all profiles including the recoverable passwords
// @Tags			Profiles
// @Produce		json
// @Success		200			{object}	ProfileListResponse
// @Failure		401			{object}	ProfileListResponse
// @Failure		403			{object}	ProfileListResponse
// @Failure		500			{object}	ProfileListResponse
// @Param			username	query		string	false	"Filter by username. Supports the wildcard *."
// @Router			/v1/profiles [get]
func GetProfiles(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileListResponse{Error: &e})
		return
	}

	var profiles []models.UserProfile
	err = models.DB.Order("username ASC").Find(&profiles).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileListResponse{Error: &e})
		return
	}

	pattern := c.Query("username")

	apiResources := make([]AdminProfile, 0)
	for _, profile := range profiles {
		if pattern != "" && !glob.Glob(pattern, profile.Username) {
			continue
		}
		apiResources = append(apiResources, newAdminProfile(c, profile))
	}

	c.JSON(http.StatusOK, ProfileListResponse{Data: apiResources})
}

// @Summary		Update deductions
// @Description	Sets the fixed monthly deduction for a user
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProfileResponse
// @Failure		400			{object}	ProfileResponse
// @Failure		401			{object}	ProfileResponse
// @Failure		403			{object}	ProfileResponse
// @Failure		404			{object}	ProfileResponse
// @Failure		500			{object}	ProfileResponse
// @Param			id			path		string				true	"User ID of the profile"
// @Param			deductions	body		DeductionsEditable	true	"Deductions"
// @Router			/v1/profiles/{id}/deductions [patch]
func UpdateDeductions(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var data DeductionsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile, err := models.ProfileByUser(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile.Deductions = data.Deductions
	err = models.DB.Save(&profile).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Rename user
// @Description	Changes the username of a profile
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProfileResponse
// @Failure		400			{object}	ProfileResponse
// @Failure		401			{object}	ProfileResponse
// @Failure		403			{object}	ProfileResponse
// @Failure		404			{object}	ProfileResponse
// @Failure		500			{object}	ProfileResponse
// @Param			id			path		string				true	"User ID of the profile"
// @Param			username	body		UsernameEditable	true	"Username"
// @Router			/v1/profiles/{id}/username [patch]
func UpdateUsername(c *gin.Context) {
	_, err := requireAdmin(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	var data UsernameEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	if strings.TrimSpace(data.Username) == "" {
		e := errUsernameNotSet.Error()
		c.JSON(status(errUsernameNotSet), ProfileResponse{Error: &e})
		return
	}

	profile, err := models.ProfileByUser(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile.Username = data.Username
	err = models.DB.Save(&profile).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}
