package middleware

import (
	"net/http"
	"strings"

	"healthtracker/internal/auth"
	"healthtracker/internal/models"
	"healthtracker/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "user_id"
	contextUserKey   = "current_user"
)

// RequireAuth verifies the bearer token and loads the caller's user record.
// A valid token whose user no longer exists is rejected, so deleting a user
// invalidates their live tokens immediately.
func RequireAuth(tokens *auth.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, user.ID)
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. Non-admin callers are rejected
// before any handler or repository code runs.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the caller loaded by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// CurrentUserID returns the caller's id, or 0 when unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	value, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := value.(uint)
	return id
}
