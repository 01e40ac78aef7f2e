package v1

import (
	"errors"
	"net/http"

	"github.com/dailyledger/backend/internal/auth"
	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsAuth)
	r.POST("/login", Login)
}

// RegisterEditable represents the parameters for creating a sign-in account
type RegisterEditable struct {
	Email    string `json:"email" binding:"required" example:"sara@example.com"` // Email address to sign in with
	Password string `json:"password" binding:"required" example:"hunter2"`       // Password, at least 4 characters
}

// LoginEditable represents the sign-in parameters
type LoginEditable struct {
	Email    string `json:"email" binding:"required" example:"sara@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

type Session struct {
	Token  string    `json:"token"`  // Bearer token to use for subsequent requests
	UserID uuid.UUID `json:"userId"` // The stable user ID the token was issued for
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                               // The session, if one was created
	Error *string  `json:"error" example:"the email address is already registered"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a sign-in account and returns a bearer token for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		RegisterEditable	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var data RegisterEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if len(data.Password) < 4 {
		e := errPasswordTooShort.Error()
		c.JSON(status(errPasswordTooShort), SessionResponse{Error: &e})
		return
	}

	secret, err := auth.HashPassword(data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	credential := models.Credential{
		UserID: uuid.New(),
		Email:  data.Email,
		Secret: secret,
	}
	err = models.DB.Create(&credential).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	token, err := auth.NewToken(credential.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &Session{
		Token:  token,
		UserID: credential.UserID,
	}})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var data LoginEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	credential, err := models.CredentialByEmail(models.DB, data.Email)
	if err != nil {
		// Do not leak whether the email address exists
		if errors.Is(err, models.ErrResourceNotFound) {
			err = errLoginFailed
		}
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	if !auth.CheckPassword(credential.Secret, data.Password) {
		e := errLoginFailed.Error()
		c.JSON(status(errLoginFailed), SessionResponse{Error: &e})
		return
	}

	token, err := auth.NewToken(credential.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{
		Token:  token,
		UserID: credential.UserID,
	}})
}
