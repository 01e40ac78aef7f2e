package v1

import (
	"errors"

	"github.com/dailyledger/backend/internal/auth"
	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// caller is the authenticated user a request acts as.
type caller struct {
	userID  uuid.UUID
	profile models.UserProfile
}

func (c caller) isAdmin() bool {
	return c.profile.IsAdmin
}

// currentUser returns the authenticated user ID without requiring a
// profile. Registration and profile setup run before a profile exists.
func currentUser(c *gin.Context) (uuid.UUID, error) {
	userID, ok := auth.Identity(c)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}

	return userID, nil
}

// currentCaller returns the authenticated user together with their profile.
func currentCaller(c *gin.Context) (caller, error) {
	userID, err := currentUser(c)
	if err != nil {
		return caller{}, err
	}

	profile, err := models.ProfileByUser(models.DB, userID)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return caller{}, errNoProfile
		}
		return caller{}, err
	}

	return caller{userID: userID, profile: profile}, nil
}

// requireAdmin returns the caller if they are an administrator.
func requireAdmin(c *gin.Context) (caller, error) {
	current, err := currentCaller(c)
	if err != nil {
		return caller{}, err
	}

	if !current.isAdmin() {
		return caller{}, errNotAdmin
	}

	return current, nil
}

// resolveTarget decides which user a request acts on.
//
// Without an explicit target the caller acts on themselves. Acting on
// another user requires the caller to be an administrator.
func resolveTarget(c *gin.Context, explicit uuid.UUID) (uuid.UUID, error) {
	current, err := currentCaller(c)
	if err != nil {
		return uuid.Nil, err
	}

	if explicit == uuid.Nil || explicit == current.userID {
		return current.userID, nil
	}

	if !current.isAdmin() {
		return uuid.Nil, errForbidden
	}

	return explicit, nil
}
