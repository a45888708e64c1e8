package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storerating/internal/domain/errors"
	"github.com/polkiloo/storerating/internal/domain/model"
)

const (
	// CurrentUserKey is a gin context key holding the authenticated *model.User.
	CurrentUserKey = "currentUser"
	authCookieName = "storerating_token"
)

// UserResolver loads the account a bearer token belongs to.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired rejects requests without a valid token for an existing user
// and stores that user under CurrentUserKey.
func AuthRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Access token required")
			return
		}

		user, err := resolver.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrUnauthorized) {
				abortWithMessage(c, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			_ = c.Error(err)
			abortWithMessage(c, http.StatusInternalServerError, "Server error")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireCapability allows the request only when the current user's role grants the capability.
func RequireCapability(required model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWithMessage(c, http.StatusUnauthorized, "Access token required")
			return
		}
		if !user.Role.Can(required) {
			abortWithMessage(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie and header to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
