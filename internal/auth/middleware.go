package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "ledger-identity"

// Middleware resolves the bearer token into an identity for the request.
//
// Requests without a usable token pass through without an identity set,
// the authorization guards reject them where one is required.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			userID, err := ParseToken(token)
			if err == nil {
				c.Set(string(identityKey), userID)
			}
		}

		c.Next()
	}
}

// Identity returns the user ID the request was authenticated as.
func Identity(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(string(identityKey))
	if !ok {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
